package series

import (
	"fmt"
	"io"
	"os"

	"github.com/Kevin-Rudy/gochart/pkg/core"
	"github.com/go-json-experiment/json"
)

// Document 图表数据文件的顶层结构
type Document struct {
	Data    DocumentData `json:"Data"`
	Message string       `json:"Message"`
	Success bool         `json:"Success"`
}

// DocumentData 数据主体
type DocumentData struct {
	NowDataFinance  FinanceRecord `json:"NowDataFinance"`
	PastDataFinance FinanceRecord `json:"PastDataFinance"`
	DataChart       []ChartPoint  `json:"DataChart"`
}

// FinanceRecord 财务指标，字段名与数据源保持一致（包括MaketCap的拼写）
type FinanceRecord struct {
	PB        float64 `json:"PB"`
	PE        float64 `json:"PE"`
	ROA       float64 `json:"ROA"`
	ROE       float64 `json:"ROE"`
	MarketCap int64   `json:"MaketCap"`
}

// ChartPoint 图表中的一个点
type ChartPoint struct {
	PE        float64 `json:"Pe"`
	Index     float64 `json:"Index"`
	LNST      int64   `json:"LNST"`
	Time      string  `json:"Time"`
	TimeStamp int64   `json:"TimeStamp"`
}

// Snapshot 转换为核心快照结构
func (f FinanceRecord) Snapshot() core.FinanceSnapshot {
	return core.FinanceSnapshot{
		PB:        f.PB,
		PE:        f.PE,
		ROA:       f.ROA,
		ROE:       f.ROE,
		MarketCap: f.MarketCap,
	}
}

// DataPoints 把图表点转换为核心数据点，顺序保持不变
func (d *Document) DataPoints() []core.DataPoint {
	points := make([]core.DataPoint, len(d.Data.DataChart))
	for i, cp := range d.Data.DataChart {
		points[i] = core.DataPoint{
			Timestamp: cp.TimeStamp,
			PE:        cp.PE,
			Index:     cp.Index,
			LNST:      cp.LNST,
			Time:      cp.Time,
		}
	}
	return points
}

// Store 由文档构建排序后的存储
func (d *Document) Store() (*Store, error) {
	return Load(d.DataPoints())
}

// ReadDocument 从reader解码数据文档
func ReadDocument(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("读取数据失败: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("解析数据失败: %w", err)
	}
	return &doc, nil
}

// LoadFile 读取并解码数据文件
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开数据文件失败: %w", err)
	}
	defer f.Close()

	return ReadDocument(f)
}

// WriteDocument 把文档编码写入writer
func WriteDocument(w io.Writer, doc *Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("编码数据失败: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("写入数据失败: %w", err)
	}
	return nil
}
