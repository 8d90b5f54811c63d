/*
 * @module service/config/config_test
 * @description 管道配置加载单元测试，覆盖默认值、配置文件和环境变量覆盖优先级
 * @architecture 测试层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 环境准备 -> 配置加载 -> 优先级验证
 * @rules 优先级从低到高：默认值 < 配置文件 < 环境变量
 * @dependencies testing, testify
 * @refs config.go
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "data/raw/WA_Fn-UseC_-Telco-Customer-Churn.csv", cfg.TelcoInputPath)
	assert.Equal(t, "utf-8", cfg.InputEncoding)
	assert.True(t, cfg.ProfileEnabled)
	assert.False(t, cfg.BenchmarkEnabled)
}

func TestLoadConfigDefaultsOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfigFile(t, "pipeline.yaml",
		"telco_input_path: /data/telco.csv\nbenchmark_enabled: true\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/data/telco.csv", cfg.TelcoInputPath)
	assert.True(t, cfg.BenchmarkEnabled)
	// 未出现在文件中的字段保持默认值
	assert.Equal(t, "data/raw/ecommerce_transactions.csv", cfg.EcommerceInputPath)
}

func TestLoadConfigFromJSON(t *testing.T) {
	path := writeConfigFile(t, "pipeline.json",
		`{"ecommerce_output_path": "/out/ecom.csv", "input_encoding": "gbk"}`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/out/ecom.csv", cfg.EcommerceOutputPath)
	assert.Equal(t, "gbk", cfg.InputEncoding)
}

func TestLoadConfigUnsupportedFormat(t *testing.T) {
	path := writeConfigFile(t, "pipeline.toml", "x = 1\n")
	t.Setenv("CONFIG_PATH", path)

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

// 环境变量覆盖配置文件
func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "pipeline.yaml",
		"telco_input_path: /data/from-file.csv\nprofile_enabled: true\n")
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("TELCO_INPUT_PATH", "/data/from-env.csv")
	t.Setenv("PROFILE_ENABLED", "false")
	t.Setenv("BENCHMARK_ENABLED", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-env.csv", cfg.TelcoInputPath)
	assert.False(t, cfg.ProfileEnabled)
	assert.True(t, cfg.BenchmarkEnabled)
}
