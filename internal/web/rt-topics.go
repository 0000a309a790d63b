//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/lnch"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/topics"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// the handlers are constructors: each takes the service and returns the
// echo.HandlerFunc bound to it, so tests can wire a service of their own

type apierror struct {
	Error string `json:"error"`
}

// RtHealth - "GET /api/health"
func RtHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": vv.VERSION})
}

// RtTopics - "GET /api/topics": every displayed topic
func RtTopics(svc *topics.TopicService) echo.HandlerFunc {
	return func(c echo.Context) error {
		tt, err := svc.Topics()
		if err != nil {
			return servererror(c, err)
		}
		return c.JSON(http.StatusOK, tt)
	}
}

// RtTopic - "GET /api/topics/:id": one topic; 404 when the id is unknown
func RtTopic(svc *topics.TopicService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := intparam(c.Param("id"))
		if !ok {
			return badrequest(c, "topic id must be an integer")
		}
		t, err := svc.Topic(id)
		if errors.Is(err, topics.ErrTopicNotFound) {
			return c.JSON(http.StatusNotFound, apierror{Error: "topic not found"})
		}
		if err != nil {
			return servererror(c, err)
		}
		return c.JSON(http.StatusOK, t)
	}
}

// RtTopicAuthors - "GET /api/topics/:id/authors": representative authors;
// degrades to an empty list, never errors past bad input
func RtTopicAuthors(svc *topics.TopicService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := intparam(c.Param("id"))
		if !ok {
			return badrequest(c, "topic id must be an integer")
		}
		return c.JSON(http.StatusOK, svc.RepresentativeAuthors(id, vv.AUTHORTOPN))
	}
}

// RtTrends - "GET /api/trends": the per-year intensity table
func RtTrends(svc *topics.TopicService) echo.HandlerFunc {
	return func(c echo.Context) error {
		tp, err := svc.Trends()
		if err != nil {
			return servererror(c, err)
		}
		return c.JSON(http.StatusOK, tp)
	}
}

// RtYearDetail - "GET /api/topic-year-detail/:id/:year"
func RtYearDetail(svc *topics.TopicService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := intparam(c.Param("id"))
		if !ok {
			return badrequest(c, "topic id must be an integer")
		}
		year, ok := intparam(c.Param("year"))
		if !ok {
			return badrequest(c, "year must be an integer")
		}
		d, err := svc.TopicYearDetail(id, year)
		if err != nil {
			return servererror(c, err)
		}
		return c.JSON(http.StatusOK, d)
	}
}

// RtDocCounts - "GET /api/topic-doc-counts?year=": dominant-document counts
func RtDocCounts(svc *topics.TopicService) echo.HandlerFunc {
	return func(c echo.Context) error {
		year, ok, err := optintquery(c, "year")
		if err != nil {
			return badrequest(c, "year must be an integer")
		}
		var filter *int
		if ok {
			filter = &year
		}
		counts, err := svc.DocCounts(filter)
		if err != nil {
			return servererror(c, err)
		}
		return c.JSON(http.StatusOK, counts)
	}
}

// RtAllYears - "GET /api/topic-all-years/:id"
func RtAllYears(svc *topics.TopicService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := intparam(c.Param("id"))
		if !ok {
			return badrequest(c, "topic id must be an integer")
		}
		d, err := svc.TopicAllYears(id)
		if err != nil {
			return servererror(c, err)
		}
		return c.JSON(http.StatusOK, d)
	}
}

// RtKeywords - "GET /api/keywords?topic=&year=": merged keyword ranking
func RtKeywords(svc *topics.TopicService) echo.HandlerFunc {
	return func(c echo.Context) error {
		topic, tok, err := optintquery(c, "topic")
		if err != nil {
			return badrequest(c, "topic must be an integer")
		}
		year, yok, err := optintquery(c, "year")
		if err != nil {
			return badrequest(c, "year must be an integer")
		}
		var tf, yf *int
		if tok {
			tf = &topic
		}
		if yok {
			yf = &year
		}
		kw, err := svc.KeywordRank(tf, yf)
		if err != nil {
			return servererror(c, err)
		}
		return c.JSON(http.StatusOK, kw)
	}
}

// RtPyLDAvis - "GET /api/vis/pyldavis": the externally built artifact
func RtPyLDAvis(svc *topics.TopicService) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := svc.PyLDAvisPath()
		if _, err := os.Stat(p); err != nil {
			return c.JSON(http.StatusNotFound, apierror{Error: "visualization not available"})
		}
		return c.File(p)
	}
}

func intparam(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	return v, err == nil
}

// optintquery - (value, present, error); absent is not an error
func optintquery(c echo.Context, name string) (int, bool, error) {
	s := c.QueryParam(name)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	return v, err == nil, err
}

func badrequest(c echo.Context, m string) error {
	return c.JSON(http.StatusBadRequest, apierror{Error: m})
}

// servererror - log the cause, hide it from the client
func servererror(c echo.Context, err error) error {
	lnch.Msg.EC(err)
	return c.JSON(http.StatusInternalServerError, apierror{Error: "internal error"})
}
