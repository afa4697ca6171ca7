package commandline

import (
	"flag"
	"fmt"
	"strconv"
)

var (
	developer = boolInt{false, 1}

	bodies int
	frames int
	seed   int

	grace float64
	push  float64
	rate  float64
	speed float64
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func init() {
	flag.Var(&developer, "developer", "developer log output, optional level")

	flag.IntVar(&bodies, "bodies", -1, "number of simulated bodies, negative is unset")
	flag.IntVar(&frames, "frames", 300, "number of frames to simulate")
	flag.IntVar(&seed, "seed", -1, "noise seed for the body scatter, negative is unset")

	flag.Float64Var(&grace, "grace", -1, "seconds a crossing outlives its trigger, negative is unset")
	flag.Float64Var(&push, "push", -1, "exit velocity boost, negative is unset")
	flag.Float64Var(&rate, "rate", 72, "simulation steps per second")
	flag.Float64Var(&speed, "speed", -1, "body launch speed, negative is unset")
}

func Bodies() int {
	return bodies
}

func Developer() bool {
	return developer.set
}

func DeveloperNum() int {
	return developer.num
}

func Frames() int {
	return frames
}

func Grace() float64 {
	return grace
}

func Push() float64 {
	return push
}

func Rate() float64 {
	return rate
}

func Seed() int {
	return seed
}

func Speed() float64 {
	return speed
}
