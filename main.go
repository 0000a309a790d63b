//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"

	"github.com/pkg/profile"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/lnch"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/pipe"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/topics"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/web"
)

func main() {
	lnch.ConfigAtLaunch()

	versioninfo := fmt.Sprintf("%s (v.%s)", vv.MYNAME, vv.VERSION)
	versioninfo = versioninfo + fmt.Sprintf(" [loglevel=%d]", lnch.Config.LogLevel)
	lnch.Msg.MAND(versioninfo)

	if lnch.Config.Profile {
		// go tool pprof --pdf ./TechTrendAnalysis /path/to/cpu.pprof > profile.pdf
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if lnch.Config.Pipeline != "" {
		pipe.Run(lnch.PipelineSteps())
		return
	}

	lay := store.NewLayout(lnch.Config.ArtifactDir)
	svc := topics.NewTopicService(lay, lnch.Msg)
	web.StartEchoServer(svc)
}
