package distort

// Config 颜色扰动参数
//
// 各区间参数需保证扰动系数为正, 由调用方负责。
type Config struct {
	BrightnessDelta float32 // 亮度扰动最大幅度, 默认 32
	ContrastLow     float32 // 对比度系数下限, 默认 0.5
	ContrastHigh    float32 // 对比度系数上限, 默认 1.5
	SaturationLow   float32 // 饱和度系数下限, 默认 0.5
	SaturationHigh  float32 // 饱和度系数上限, 默认 1.5
	HueDelta        float32 // 色调扰动最大幅度, 默认 18
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		BrightnessDelta: 32,
		ContrastLow:     0.5,
		ContrastHigh:    1.5,
		SaturationLow:   0.5,
		SaturationHigh:  1.5,
		HueDelta:        18,
	}
}
