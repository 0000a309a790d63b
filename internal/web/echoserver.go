//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package web serves the topic query API over echo.
package web

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/lnch"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/topics"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer(svc *topics.TopicService) {
	// https://echo.labstack.com/guide/

	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "i: ${remote_ip}\t r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
	)

	//
	// SETUP
	//

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	if lnch.Config.EchoLog == 3 {
		e.Use(middleware.Logger())
	} else if lnch.Config.EchoLog == 2 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT}))
	} else if lnch.Config.EchoLog == 1 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	}

	e.Use(middleware.Recover())

	if lnch.Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// TOPIC ROUTES ("rt-topics.go")
	//

	e.GET("/api/health", RtHealth)
	e.GET("/api/topics", RtTopics(svc))
	e.GET("/api/topics/:id", RtTopic(svc))                // "u: /api/topics/3"
	e.GET("/api/topics/:id/authors", RtTopicAuthors(svc)) // "u: /api/topics/3/authors"
	e.GET("/api/trends", RtTrends(svc))
	e.GET("/api/topic-year-detail/:id/:year", RtYearDetail(svc)) // "u: /api/topic-year-detail/3/2019"
	e.GET("/api/topic-doc-counts", RtDocCounts(svc))             // "u: /api/topic-doc-counts?year=2019"
	e.GET("/api/topic-all-years/:id", RtAllYears(svc))           // "u: /api/topic-all-years/3"
	e.GET("/api/keywords", RtKeywords(svc))                      // "u: /api/keywords?topic=3&year=2019"
	e.GET("/api/vis/pyldavis", RtPyLDAvis(svc))

	lnch.Msg.MAND(fmt.Sprintf("listening on %s:%d", lnch.Config.HostIP, lnch.Config.HostPort))
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", lnch.Config.HostIP, lnch.Config.HostPort)))
}
