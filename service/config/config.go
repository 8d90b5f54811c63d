/*
 * @module service/config/config
 * @description 清洗管道配置，负责默认值、配置文件加载和环境变量覆盖
 * @architecture 分层架构 - 配置层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 默认配置 -> 配置文件加载(yaml/json) -> 环境变量覆盖 -> 配置校验
 * @rules 配置结构在进程启动时构造一次并显式传入管道入口，清洗函数不读任何全局状态
 * @dependencies encoding/json, gopkg.in/yaml.v3, github.com/spf13/cast
 * @refs service/pipeline_service.go, main.go
 */

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// PipelineConfig 清洗管道配置
type PipelineConfig struct {
	TelcoInputPath      string `json:"telco_input_path" yaml:"telco_input_path"`
	TelcoOutputPath     string `json:"telco_output_path" yaml:"telco_output_path"`
	EcommerceInputPath  string `json:"ecommerce_input_path" yaml:"ecommerce_input_path"`
	EcommerceOutputPath string `json:"ecommerce_output_path" yaml:"ecommerce_output_path"`
	InputEncoding       string `json:"input_encoding" yaml:"input_encoding"`
	ProfileEnabled      bool   `json:"profile_enabled" yaml:"profile_enabled"`
	BenchmarkEnabled    bool   `json:"benchmark_enabled" yaml:"benchmark_enabled"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *PipelineConfig {
	return &PipelineConfig{
		TelcoInputPath:      "data/raw/WA_Fn-UseC_-Telco-Customer-Churn.csv",
		TelcoOutputPath:     "data/processed/telco_customer_churn_cleaned.csv",
		EcommerceInputPath:  "data/raw/ecommerce_transactions.csv",
		EcommerceOutputPath: "data/processed/ecommerce_transactions_cleaned.csv",
		InputEncoding:       "utf-8",
		ProfileEnabled:      true,
		BenchmarkEnabled:    false,
	}
}

// LoadConfig 加载配置：默认值 -> CONFIG_PATH 指定的配置文件 -> 环境变量覆盖
func LoadConfig() (*PipelineConfig, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// loadFromFile 按扩展名加载 yaml 或 json 配置文件
func (c *PipelineConfig) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("解析 YAML 配置失败: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("解析 JSON 配置失败: %w", err)
		}
	default:
		return fmt.Errorf("不支持的配置文件格式: %s", path)
	}
	return nil
}

// applyEnvOverrides 应用环境变量覆盖，环境变量优先级最高
func (c *PipelineConfig) applyEnvOverrides() {
	if val := os.Getenv("TELCO_INPUT_PATH"); val != "" {
		c.TelcoInputPath = val
	}
	if val := os.Getenv("TELCO_OUTPUT_PATH"); val != "" {
		c.TelcoOutputPath = val
	}
	if val := os.Getenv("ECOMMERCE_INPUT_PATH"); val != "" {
		c.EcommerceInputPath = val
	}
	if val := os.Getenv("ECOMMERCE_OUTPUT_PATH"); val != "" {
		c.EcommerceOutputPath = val
	}
	if val := os.Getenv("INPUT_ENCODING"); val != "" {
		c.InputEncoding = val
	}
	if val := os.Getenv("PROFILE_ENABLED"); val != "" {
		c.ProfileEnabled = cast.ToBool(val)
	}
	if val := os.Getenv("BENCHMARK_ENABLED"); val != "" {
		c.BenchmarkEnabled = cast.ToBool(val)
	}
}
