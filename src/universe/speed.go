package universe

import (
	"math"
	"time"
)

const (
	//DefaultInterval is the poll interval the speed controller falls back to
	DefaultInterval = 400 * time.Millisecond
	//DefaultSize is the default display width and height
	DefaultSize = 32
	//Paused is the poll interval sentinel meaning the simulation is paused,
	//viewers render it as the literal "max"
	Paused = time.Duration(math.MaxInt64)
)

func divisor(big bool) time.Duration {
	if big {
		return 2
	}
	return 5
}

//Faster shrinks the poll interval by its half (big) or its fifth
//an invalid input is repaired to DefaultInterval, speed adjustment
//never fails visibly
func Faster(d time.Duration, big bool) time.Duration {
	if d <= 0 {
		return DefaultInterval
	}
	return d - d/divisor(big)
}

//Slower grows the poll interval by its half (big) or its fifth
//an invalid input or an overflowing sum is repaired to DefaultInterval
func Slower(d time.Duration, big bool) time.Duration {
	if d <= 0 || d > math.MaxInt64-d/divisor(big) {
		return DefaultInterval
	}
	return d + d/divisor(big)
}
