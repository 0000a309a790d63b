//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"os"
	"time"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// MessageMaker - threshold-gated console logging; everything at or below LLvl prints
type MessageMaker struct {
	Lnc  time.Time
	LLvl int
	SNm  string
	Ver  string
}

func NewMessageMaker(loglevel int) *MessageMaker {
	return &MessageMaker{
		Lnc:  time.Now(),
		LLvl: loglevel,
		SNm:  vv.SHORTNAME,
		Ver:  vv.VERSION,
	}
}

// Emit - print a message if the loglevel warrants it
func (m *MessageMaker) Emit(message string, threshold int) {
	if m.LLvl >= threshold {
		fmt.Printf("[%s] %s\n", m.SNm, message)
	}
}

func (m *MessageMaker) MAND(s string) { m.Emit(s, vv.MSGMAND) }
func (m *MessageMaker) CRIT(s string) { m.Emit(s, vv.MSGCRIT) }
func (m *MessageMaker) WARN(s string) { m.Emit(s, vv.MSGWARN) }
func (m *MessageMaker) NOTE(s string) { m.Emit(s, vv.MSGNOTE) }
func (m *MessageMaker) FYI(s string)  { m.Emit(s, vv.MSGFYI) }
func (m *MessageMaker) PEEK(s string) { m.Emit(s, vv.MSGPEEK) }
func (m *MessageMaker) TMI(s string)  { m.Emit(s, vv.MSGTMI) }

// EC - note an error and keep going
func (m *MessageMaker) EC(err error) {
	if err != nil {
		m.Emit(fmt.Sprintf("ERROR: %v", err), vv.MSGCRIT)
	}
}

// EF - fatal: offline batch steps are rerun, not nursed along
func (m *MessageMaker) EF(err error) {
	if err != nil {
		m.Emit(fmt.Sprintf("UNRECOVERABLE ERROR [%s v.%s]: %v", m.SNm, m.Ver, err), vv.MSGMAND)
		os.Exit(1)
	}
}

// Timer - report elapsed time for a pipeline stage; mirrors launch timetracking
func (m *MessageMaker) Timer(tag string, message string, start time.Time, previous time.Time) {
	d := fmt.Sprintf("[%s: %.3fs]", tag, time.Now().Sub(start).Seconds())
	t := fmt.Sprintf("[Δ: %.3fs] ", time.Now().Sub(previous).Seconds())
	m.Emit(d+t+message, vv.MSGNOTE)
}
