/*
 * @module service/pipeline_service
 * @description 清洗管道组合服务，按固定顺序执行 加载 -> 画像 -> 清洗 -> 画像 -> 落盘
 * @architecture 分层架构 - 业务服务层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 原始数据加载 -> 原始画像 -> 数据清洗（可选基准测量）-> 清洗后画像 -> CSV 落盘
 * @rules 单线程批处理，每个阶段完全消费输入再产出；基准测量只包裹清洗逻辑，不含 I/O
 * @dependencies dataclean-service/service/loader, dataclean-service/service/data_cleaning
 * @refs main.go
 */

package service

import (
	"context"
	"fmt"
	"log/slog"

	"dataclean-service/service/benchmark"
	"dataclean-service/service/config"
	"dataclean-service/service/data_cleaning"
	"dataclean-service/service/dataset"
	"dataclean-service/service/loader"
)

// PipelineService 数据清洗管道服务
type PipelineService struct {
	config   *config.PipelineConfig
	profiler *data_cleaning.Profiler
	telco    *data_cleaning.TelcoChurnCleaner
	ecom     *data_cleaning.EcommerceCleaner
}

// NewPipelineService 创建清洗管道服务实例
func NewPipelineService(cfg *config.PipelineConfig) *PipelineService {
	return &PipelineService{
		config:   cfg,
		profiler: data_cleaning.NewProfiler(cfg.ProfileEnabled),
		telco:    data_cleaning.NewTelcoChurnCleaner(),
		ecom:     data_cleaning.NewEcommerceCleaner(),
	}
}

// RunTelco 执行电信流失数据清洗管道
func (s *PipelineService) RunTelco(ctx context.Context) (*data_cleaning.TelcoCleanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := loader.LoadCSV(s.config.TelcoInputPath, loader.LoadOptions{Encoding: s.config.InputEncoding})
	if err != nil {
		return nil, fmt.Errorf("加载电信流失数据集失败: %w", err)
	}
	s.profiler.Report(raw, "RAW DATA")

	var cleaned *dataset.Table
	var result *data_cleaning.TelcoCleanResult
	if err := s.measure("telco_churn", raw.NumRows(), func() {
		cleaned, result = s.telco.Clean(raw)
	}); err != nil {
		return nil, err
	}

	s.profiler.Report(cleaned, "CLEANED DATA")

	if err := loader.PersistCSV(cleaned, s.config.TelcoOutputPath); err != nil {
		return result, fmt.Errorf("落盘电信清洗结果失败: %w", err)
	}

	slog.Info("电信流失数据清洗完成",
		"rows_in", result.RowsIn,
		"rows_out", result.RowsOut,
		"removed_invalid_totalcharges", result.RemovedInvalidTotalCharges,
		"output_path", s.config.TelcoOutputPath)
	return result, nil
}

// RunEcommerce 执行电商交易数据清洗管道
func (s *PipelineService) RunEcommerce(ctx context.Context) (*data_cleaning.EcommerceCleanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := loader.LoadCSV(s.config.EcommerceInputPath, loader.LoadOptions{Encoding: s.config.InputEncoding})
	if err != nil {
		return nil, fmt.Errorf("加载电商交易数据集失败: %w", err)
	}
	s.profiler.Report(raw, "RAW DATA")

	var cleaned *dataset.Table
	var result *data_cleaning.EcommerceCleanResult
	if err := s.measure("ecommerce_transactions", raw.NumRows(), func() {
		cleaned, result = s.ecom.Clean(raw)
	}); err != nil {
		return nil, err
	}

	s.profiler.Report(cleaned, "CLEANED DATA")

	if err := loader.PersistCSV(cleaned, s.config.EcommerceOutputPath); err != nil {
		return result, fmt.Errorf("落盘电商清洗结果失败: %w", err)
	}

	slog.Info("电商交易数据清洗完成",
		"rows_in", result.RowsIn,
		"rows_out", result.RowsOut,
		"removed_invalid_age", result.RemovedInvalidAge,
		"removed_invalid_purchase_amount", result.RemovedInvalidPurchaseAmount,
		"output_path", s.config.EcommerceOutputPath)
	return result, nil
}

// measure 按配置决定是否对清洗逻辑做基准测量
func (s *PipelineService) measure(label string, rows int, clean func()) error {
	if !s.config.BenchmarkEnabled {
		clean()
		return nil
	}
	_, err := benchmark.Measure(label, func() (int, error) {
		clean()
		return rows, nil
	})
	return err
}
