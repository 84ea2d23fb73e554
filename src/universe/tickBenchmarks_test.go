package universe

import (
	"sort"
	"testing"
)

var tickEngines = map[string]func(*Universe){
	"serial":   (*Universe).Tick,
	"parallel": (*Universe).TickParallel,
}

func engineNames() (names []string) {
	names = make([]string, 0, len(tickEngines))
	for k := range tickEngines {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

func Benchmark_Tick(b *testing.B) {
	for _, name := range engineNames() {
		step := tickEngines[name]
		b.Run(name, func(b *testing.B) {
			u := Stripes(200, 200)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				step(u)
			}
		})
	}
}
