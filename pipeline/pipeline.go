// Package pipeline 按训练时的固定顺序编排各项预处理变换
package pipeline

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/getcharzp/go-imgaug"
	"github.com/getcharzp/go-imgaug/distort"
	"github.com/getcharzp/go-imgaug/geometry"
	"github.com/getcharzp/go-imgaug/preset"
	"github.com/up-zero/gotool/convertutil"
)

// Pipeline 训练时图像预处理流水线
//
// 顺序: 颜色扰动 -> 随机翻转 -> 随机扩张 -> 保比缩放 -> 填充 -> 归一化。
// 每个 Pipeline 持有独立随机源, 并发场景下应每个 worker 建一个实例。
type Pipeline struct {
	config    Config
	distorter *distort.Distorter
	rng       *rand.Rand
}

// New 创建流水线
//
// # Params:
//
//	cfg: 配置
//	rng: 随机源, 传 nil 时内部自动初始化
func New(cfg Config, rng *rand.Rand) (*Pipeline, error) {
	if len(cfg.InputSizes) == 0 {
		return nil, fmt.Errorf("输入尺寸列表不能为空")
	}
	for _, s := range cfg.InputSizes {
		if s <= 0 {
			return nil, fmt.Errorf("输入尺寸必须为正数: %d", s)
		}
	}
	for i, s := range cfg.Std {
		if s <= 0 {
			return nil, fmt.Errorf("标准差必须为正数: std[%d] = %v", i, s)
		}
	}
	if cfg.PadMode == PadMultiple && cfg.PadDivisor <= 0 {
		return nil, fmt.Errorf("填充除数必须为正数: %d", cfg.PadDivisor)
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	dc := distort.DefaultConfig()
	if err := convertutil.CopyProperties(cfg, &dc); err != nil {
		return nil, fmt.Errorf("复制扰动参数失败: %w", err)
	}

	return &Pipeline{
		config:    cfg,
		distorter: distort.NewDistorter(dc, rng),
		rng:       rng,
	}, nil
}

// Process 对单张图片执行一次完整的训练预处理
//
// 返回归一化后的张量与几何元数据, 元数据供下游标签坐标换算。
//
// # Params:
//
//	src: 三通道 RGB 张量, 像素取值范围 [0, 255]
func (p *Pipeline) Process(src *imgaug.Image) (*imgaug.Image, Meta, error) {
	var meta Meta

	img := src
	if p.config.Distort {
		img = p.distorter.Apply(img)
	}

	if p.rng.Float32() < p.config.FlipProbability {
		img = geometry.FlipHorizontal(img)
		meta.Flipped = true
	}

	img, meta.Expansion = geometry.RandomExpand(img, p.config.MaxExpandRatio, p.config.KeepExpandRatio, p.rng)

	size := p.config.InputSizes[p.rng.IntN(len(p.config.InputSizes))]
	meta.InputSize = size
	img, meta.ScaleFactor = geometry.RescaleKeepAspect(img, size, size)

	switch p.config.PadMode {
	case PadMultiple:
		img = geometry.PadToMultiple(img, p.config.PadDivisor)
	default:
		padded, err := geometry.PadToSquare(img, size)
		if err != nil {
			return nil, Meta{}, fmt.Errorf("正方形填充失败: %w", err)
		}
		img = padded
	}

	return imgaug.Normalize(img, p.config.Mean, p.config.Std), meta, nil
}

// ProcessImage 从标准库图像入口执行预处理, 透明通道以白色背景合成
//
// # Params:
//
//	src: 解码后的图像
func (p *Pipeline) ProcessImage(src image.Image) (*imgaug.Image, Meta, error) {
	return p.Process(imgaug.FromImage(imgaug.Composite(src)))
}

// Anchors 返回透传的先验框表
func (p *Pipeline) Anchors() []preset.Anchor {
	return p.config.Anchors
}

// Labels 返回透传的类别表
func (p *Pipeline) Labels() []string {
	return p.config.Labels
}
