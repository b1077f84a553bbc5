// Package distort 实现训练时的随机颜色扰动 (亮度/对比度/饱和度/色调)
package distort

import (
	"math"
	"math/rand/v2"

	"github.com/getcharzp/go-imgaug"
	"gonum.org/v1/gonum/mat"
)

// 灰度权重 (ITU-R BT.601)
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// RGB 与 YIQ 色彩空间的互转矩阵
var (
	rgb2yiq = []float64{
		0.299, 0.587, 0.114,
		0.596, -0.274, -0.321,
		0.211, -0.523, 0.311,
	}
	yiq2rgb = []float64{
		1.0, 0.956, 0.621,
		1.0, -0.272, -0.647,
		1.0, -1.107, 1.705,
	}
)

// Distorter 颜色扰动器, 持有独立随机源
//
// 并发处理多张图片时应每个 worker 建一个实例, 各自注入独立随机源。
type Distorter struct {
	config Config
	rng    *rand.Rand
}

// NewDistorter 创建颜色扰动器
//
// # Params:
//
//	cfg: 扰动参数
//	rng: 随机源, 传 nil 时内部自动初始化
func NewDistorter(cfg Config, rng *rand.Rand) *Distorter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Distorter{
		config: cfg,
		rng:    rng,
	}
}

// Apply 随机颜色扰动
//
// 亮度始终最先尝试, 其后对比度/饱和度/色调按两种固定顺序等概率二选一,
// 四个子变换各自以 0.5 的概率独立生效。
// 输入像素取值范围应在 [0, 255], 输出不做截断, 可能超出该范围。
//
// # Params:
//
//	src: 三通道 RGB 输入张量
func (d *Distorter) Apply(src *imgaug.Image) *imgaug.Image {
	dst := src.Clone()

	d.brightness(dst)

	if d.rng.IntN(2) == 1 {
		d.contrast(dst)
		d.saturation(dst)
		d.hue(dst)
	} else {
		d.saturation(dst)
		d.hue(dst)
		d.contrast(dst)
	}
	return dst
}

func (d *Distorter) uniform(low, high float32) float32 {
	return low + d.rng.Float32()*(high-low)
}

// brightness 亮度扰动: 所有像素加同一随机偏移
func (d *Distorter) brightness(img *imgaug.Image) {
	if d.rng.Float32() < 0.5 {
		return
	}
	delta := d.uniform(-d.config.BrightnessDelta, d.config.BrightnessDelta)
	for i := range img.Data {
		img.Data[i] += delta
	}
}

// contrast 对比度扰动: 所有像素乘同一随机系数
func (d *Distorter) contrast(img *imgaug.Image) {
	if d.rng.Float32() < 0.5 {
		return
	}
	alpha := d.uniform(d.config.ContrastLow, d.config.ContrastHigh)
	for i := range img.Data {
		img.Data[i] *= alpha
	}
}

// saturation 饱和度扰动: 按随机系数向自身灰度图混合
func (d *Distorter) saturation(img *imgaug.Image) {
	if d.rng.Float32() < 0.5 {
		return
	}
	alpha := d.uniform(d.config.SaturationLow, d.config.SaturationHigh)
	for i := 0; i < len(img.Data); i += 3 {
		r, g, b := img.Data[i], img.Data[i+1], img.Data[i+2]
		gray := (lumaR*r + lumaG*g + lumaB*b) * (1 - alpha)
		img.Data[i] = alpha*r + gray
		img.Data[i+1] = alpha*g + gray
		img.Data[i+2] = alpha*b + gray
	}
}

// hue 色调扰动: 在 YIQ 空间内按随机角度旋转色度平面
func (d *Distorter) hue(img *imgaug.Image) {
	if d.rng.Float32() < 0.5 {
		return
	}
	alpha := float64(d.uniform(-d.config.HueDelta, d.config.HueDelta))
	u := math.Cos(alpha * math.Pi)
	w := math.Sin(alpha * math.Pi)

	// RGB -> YIQ -> 旋转 -> RGB 的组合矩阵
	rot := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, u, -w,
		0, w, u,
	})
	var t1, t2 mat.Dense
	t1.Mul(mat.NewDense(3, 3, yiq2rgb), rot)
	t2.Mul(&t1, mat.NewDense(3, 3, rgb2yiq))

	for i := 0; i < len(img.Data); i += 3 {
		r := float64(img.Data[i])
		g := float64(img.Data[i+1])
		b := float64(img.Data[i+2])
		img.Data[i] = float32(t2.At(0, 0)*r + t2.At(0, 1)*g + t2.At(0, 2)*b)
		img.Data[i+1] = float32(t2.At(1, 0)*r + t2.At(1, 1)*g + t2.At(1, 2)*b)
		img.Data[i+2] = float32(t2.At(2, 0)*r + t2.At(2, 1)*g + t2.At(2, 2)*b)
	}
}
