//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/mm"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

var (
	Config = BuildDefaultConfig()
	Msg    = mm.NewMessageMaker(vv.DEFAULTGOLOGLEVEL)
)

type LDAOptions struct {
	Topics     int
	Seed       uint64
	Passes     int
	Iterations int
	Alpha      string // fixed value as a string, or "auto"
	Eta        string // ditto
	ChunkSize  int
}

type CurrentConfiguration struct {
	HostIP         string
	HostPort       int
	EchoLog        int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	LogLevel       int
	Gzip           bool
	Profile        bool
	ArtifactDir    string
	InputCSV       string
	Pipeline       string // "" = serve; otherwise comma-joined step names or "all"
	TokenMinLen    int
	Lemmatize      bool
	StopLanguage   string
	ExtraStops     []string
	NoBelow        int
	NoAbove        float64
	KeepN          int
	LDA            LDAOptions
	LabelOverrides string // path to a {topicID: label} JSON file; optional
}

// BuildDefaultConfig - a CurrentConfiguration filled out with the stock values
func BuildDefaultConfig() CurrentConfiguration {
	var c CurrentConfiguration
	c.HostIP = vv.DEFAULTHOSTIP
	c.HostPort = vv.DEFAULTHOSTPORT
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.Gzip = false
	c.Profile = false
	c.ArtifactDir = vv.DEFAULTARTIFACTDIR
	c.InputCSV = vv.DEFAULTINPUTCSV
	c.TokenMinLen = vv.TOKENMINLENGTH
	c.Lemmatize = true
	c.StopLanguage = "english"
	c.NoBelow = vv.VOCABNOBELOW
	c.NoAbove = vv.VOCABNOABOVE
	c.KeepN = vv.VOCABKEEPN
	c.LDA = LDAOptions{
		Topics:     vv.LDATOPICS,
		Seed:       vv.LDASEED,
		Passes:     vv.LDAPASSES,
		Iterations: vv.LDAITER,
		Alpha:      "auto",
		Eta:        "auto",
		ChunkSize:  vv.LDACHUNKSIZE,
	}
	return c
}

// ConfigAtLaunch - defaults, then the JSON config file, then the command line
func ConfigAtLaunch() {
	const (
		HELP = `command line options:
   -ad <dir>   artifact directory [default: %s]
   -cf <file>  use <file> as the configuration file
   -el <num>   echo log level (0-3) [default: %d]
   -gl <num>   application log level (0-5) [default: %d]
   -gz         enable gzip on the server
   -h          print this help and exit
   -in <file>  input papers csv for the pipeline [default: %s]
   -lo <file>  topic label override json for the 'label' step
   -pl <steps> run the offline pipeline; comma-joined subset of
               "normalize,vectorize,train,label,trends,vis" or "all"
   -prof       write a cpu profile
   -sa <addr>  server address [default: %s]
   -sp <num>   server port [default: %d]
   -v          print version and exit`
	)

	Config = BuildDefaultConfig()

	cf := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)
	if uh, e := os.UserHomeDir(); e == nil {
		alt := fmt.Sprintf(vv.CONFIGALTAPTH, uh) + vv.CONFIGBASIC
		if _, e := os.Stat(cf); e != nil {
			cf = alt
		}
	}

	args := os.Args[1:]

	// "-cf" has to win before the file is read
	for i, a := range args {
		if a == "-cf" && i+1 < len(args) {
			cf = args[i+1]
		}
	}

	loadConfigFile(cf)

	for i, a := range args {
		switch a {
		case "-ad":
			Config.ArtifactDir = args[i+1]
		case "-el":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EF(err)
			Config.EchoLog = ll
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EF(err)
			Config.LogLevel = ll
		case "-gz":
			Config.Gzip = true
		case "-h":
			fmt.Printf(HELP+"\n", vv.DEFAULTARTIFACTDIR, vv.DEFAULTECHOLOGLEVEL, vv.DEFAULTGOLOGLEVEL,
				vv.DEFAULTINPUTCSV, vv.DEFAULTHOSTIP, vv.DEFAULTHOSTPORT)
			os.Exit(0)
		case "-in":
			Config.InputCSV = args[i+1]
		case "-lo":
			Config.LabelOverrides = args[i+1]
		case "-pl":
			Config.Pipeline = args[i+1]
		case "-prof":
			Config.Profile = true
		case "-sa":
			Config.HostIP = args[i+1]
		case "-sp":
			p, err := strconv.Atoi(args[i+1])
			Msg.EF(err)
			Config.HostPort = p
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(0)
		default:
			// do nothing: values for the preceding flag
		}
	}

	Msg.LLvl = Config.LogLevel
	Msg.FYI(fmt.Sprintf("%s (v.%s) configured; artifacts at '%s'", vv.MYNAME, vv.VERSION, Config.ArtifactDir))
}

func loadConfigFile(cf string) {
	const (
		FAIL = "could not parse '%s'; skipping it and using built-in defaults"
	)

	loaded, e := os.Open(cf)
	if e != nil {
		Msg.PEEK(fmt.Sprintf("no configuration file at '%s'", cf))
		return
	}
	defer loaded.Close()

	dec := json.NewDecoder(loaded)
	c := BuildDefaultConfig()
	if err := dec.Decode(&c); err != nil {
		Msg.CRIT(fmt.Sprintf(FAIL, cf))
		return
	}
	Config = c
	Msg.TMI(fmt.Sprintf("'%s' loaded", cf))
}

// PipelineSteps - the requested offline steps in canonical order
func PipelineSteps() []string {
	const ALLSTEPS = "normalize,vectorize,train,label,trends,vis"

	if Config.Pipeline == "" {
		return nil
	}
	req := Config.Pipeline
	if req == "all" {
		req = ALLSTEPS
	}
	var steps []string
	for _, s := range strings.Split(req, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			steps = append(steps, s)
		}
	}
	return steps
}
