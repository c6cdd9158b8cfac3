package report

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/width"
)

const (
	normalTemperatureMin  = 350
	normalTemperatureMax  = 369 // 不含
	normalTemperatureStep = 3
)

// TemperatureGenerator 未填体温时产生一个正常体温（35.0 ~ 36.8）
type TemperatureGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTemperatureGenerator src 为 nil 时以当前时间为种子
func NewTemperatureGenerator(src rand.Source) *TemperatureGenerator {
	if src == nil {
		src = rand.NewSource(rand.Int63())
	}
	return &TemperatureGenerator{rnd: rand.New(src)}
}

// Normal 从 {350, 353, ..., 368} 取一个值再除以 10
func (g *TemperatureGenerator) Normal() string {
	choices := (normalTemperatureMax - normalTemperatureMin + normalTemperatureStep - 1) / normalTemperatureStep
	g.mu.Lock()
	n := g.rnd.Intn(choices)
	g.mu.Unlock()
	v := float64(normalTemperatureMin+n*normalTemperatureStep) / 10
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// IsTemperatureText 能解析成浮点数就当作体温，否则是症状。
// 全形输入（３７．５）先转半形再解析。
func IsTemperatureText(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(width.Narrow.String(s)), 64)
	return err == nil
}
