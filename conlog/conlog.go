package conlog

import "log"

var (
	p   func(string, ...interface{}) = log.Printf
	sp  func(string, ...interface{}) = log.Printf
	dev func() bool                  = func() bool { return false }
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}
func SetSavePrintf(f func(string, ...interface{})) {
	sp = f
}

// SetDeveloper sets the gate consulted by DPrintf.
func SetDeveloper(f func() bool) {
	dev = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

func SafePrintf(format string, v ...interface{}) {
	sp(format, v...)
}

// DPrintf prints only when the developer gate reports true.
func DPrintf(format string, v ...interface{}) {
	if dev() {
		p(format, v...)
	}
}
