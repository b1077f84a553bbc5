package pipeline

import (
	"github.com/getcharzp/go-imgaug"
	"github.com/getcharzp/go-imgaug/geometry"
	"github.com/getcharzp/go-imgaug/preset"
)

// PadMode 填充方式
type PadMode int

const (
	PadSquare   PadMode = iota // 填充为 InputSize 边长的正方形
	PadMultiple                // 高宽分别填充到 PadDivisor 的整数倍
)

// Config 训练预处理流水线参数
type Config struct {
	// 颜色扰动参数 (与 distort.Config 同名, 初始化时拷贝过去)
	Distort         bool    // 是否启用颜色扰动, 默认 true
	BrightnessDelta float32 // 亮度扰动最大幅度, 默认 32
	ContrastLow     float32 // 对比度系数下限, 默认 0.5
	ContrastHigh    float32 // 对比度系数上限, 默认 1.5
	SaturationLow   float32 // 饱和度系数下限, 默认 0.5
	SaturationHigh  float32 // 饱和度系数上限, 默认 1.5
	HueDelta        float32 // 色调扰动最大幅度, 默认 18

	// 几何参数
	FlipProbability float32 // 水平翻转概率, 默认 0.5
	MaxExpandRatio  float32 // 随机扩张最大比例, 默认 2, 小于等于 1 时关闭扩张
	KeepExpandRatio bool    // 扩张时是否保持宽高比, 默认 true
	InputSizes      []int   // 输入边长列表, 每次调用随机取一个 (多尺度训练)
	PadMode         PadMode // 填充方式, 默认 PadSquare
	PadDivisor      int     // PadMultiple 时的除数, 默认 32

	// 归一化参数
	Mean [3]float32 // 各通道均值
	Std  [3]float32 // 各通道标准差, 需为正数

	// 透传给下游标签分配阶段的只读配置, 核心不读写
	Anchors []preset.Anchor
	Labels  []string
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		Distort:         true,
		BrightnessDelta: 32,
		ContrastLow:     0.5,
		ContrastHigh:    1.5,
		SaturationLow:   0.5,
		SaturationHigh:  1.5,
		HueDelta:        18,

		FlipProbability: 0.5,
		MaxExpandRatio:  2,
		KeepExpandRatio: true,
		InputSizes:      preset.TrainInputSizes,
		PadMode:         PadSquare,
		PadDivisor:      32,

		Mean: imgaug.ImageNetMean,
		Std:  imgaug.ImageNetStd,
	}
}

// DefaultCOCOConfig COCO 数据集的默认配置
func DefaultCOCOConfig() Config {
	cfg := DefaultConfig()
	cfg.Anchors = preset.COCOAnchors
	cfg.Labels = preset.COCOLabels
	return cfg
}

// DefaultVOCConfig VOC 数据集的默认配置
func DefaultVOCConfig() Config {
	cfg := DefaultConfig()
	cfg.Anchors = preset.VOCAnchors
	cfg.Labels = preset.VOCLabels
	return cfg
}

// Meta 单次预处理产生的几何元数据, 供下游标签坐标换算
type Meta struct {
	Flipped     bool               // 本次是否做了水平翻转
	Expansion   geometry.Expansion // 随机扩张的放置信息
	ScaleFactor float32            // 保比缩放的缩放系数
	InputSize   int                // 本次选中的输入边长
}
