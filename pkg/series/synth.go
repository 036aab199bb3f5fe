package series

import (
	"math"
	"math/rand"
	"time"
)

// Synthesize 生成n个在[from, to]内等间距分布的合成数据点
// PE与指数为带种子的随机游走，相同参数总是生成相同的文档
func Synthesize(n int, from, to time.Time, seed int64) *Document {
	doc := &Document{Message: "synthetic", Success: true}
	if n <= 0 || !to.After(from) {
		return doc
	}

	rng := rand.New(rand.NewSource(seed))
	start := from.Unix()
	span := to.Unix() - start

	pe, index := 15.0, 1000.0
	points := make([]ChartPoint, 0, n)
	var lastTS int64 = math.MinInt64
	for i := 0; i < n; i++ {
		ts := start
		if n > 1 {
			ts = start + span*int64(i)/int64(n-1)
		}
		if ts <= lastTS {
			ts = lastTS + 1
		}
		lastTS = ts

		pe = math.Max(1, pe*(1+rng.NormFloat64()*0.01))
		index = math.Max(1, index*(1+rng.NormFloat64()*0.008))

		points = append(points, ChartPoint{
			PE:        math.Round(pe*100) / 100,
			Index:     math.Round(index*100) / 100,
			LNST:      int64(rng.Intn(1_000_000)),
			Time:      time.Unix(ts, 0).UTC().Format("2006-01-02T15:04:05"),
			TimeStamp: ts,
		})
	}

	last := points[len(points)-1]
	doc.Data.DataChart = points
	doc.Data.NowDataFinance = FinanceRecord{PB: 1.8, PE: last.PE, ROA: 2.1, ROE: 14.3, MarketCap: 5_432_100_000_000}
	doc.Data.PastDataFinance = FinanceRecord{PB: 1.6, PE: points[0].PE, ROA: 1.9, ROE: 12.7, MarketCap: 4_210_000_000_000}
	return doc
}
