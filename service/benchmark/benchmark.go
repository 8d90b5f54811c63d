/*
 * @module service/benchmark/benchmark
 * @description 显式基准测量包装器，记录一次清洗执行的耗时、吞吐和内存分配
 * @architecture 工具层 - 高阶测量函数
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 内存快照 -> 被测函数执行 -> 耗时与分配量统计 -> 日志输出
 * @rules 测量只包裹清洗逻辑本身，不含文件 I/O；清洗函数接口不感知测量
 * @dependencies runtime, github.com/google/uuid
 * @refs service/pipeline_service.go
 */

package benchmark

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Metrics 单次测量结果
type Metrics struct {
	RunID          string        `json:"run_id"`
	Label          string        `json:"label"`
	Rows           int           `json:"rows"`
	Duration       time.Duration `json:"duration"`
	RowsPerSecond  float64       `json:"rows_per_second"`
	AllocatedBytes uint64        `json:"allocated_bytes"`
}

// Measure 测量一次执行，fn 返回处理的行数
// 被测函数报错时照常返回已采集的指标和原始错误
func Measure(label string, fn func() (int, error)) (*Metrics, error) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	startTime := time.Now()
	rows, err := fn()
	duration := time.Since(startTime)

	runtime.ReadMemStats(&after)

	m := &Metrics{
		RunID:          uuid.NewString(),
		Label:          label,
		Rows:           rows,
		Duration:       duration,
		AllocatedBytes: after.TotalAlloc - before.TotalAlloc,
	}
	if duration > 0 {
		m.RowsPerSecond = float64(rows) / duration.Seconds()
	}
	if err != nil {
		return m, err
	}

	slog.Info("基准测量完成",
		"run_id", m.RunID,
		"label", m.Label,
		"rows", m.Rows,
		"duration_ms", m.Duration.Milliseconds(),
		"rows_per_second", m.RowsPerSecond,
		"allocated_mb", float64(m.AllocatedBytes)/(1024*1024))
	return m, nil
}
