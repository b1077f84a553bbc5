// Package geometry 实现检测训练的几何变换: 翻转/随机扩张/保比缩放/零填充
//
// 缩放与扩张会同时返回几何元数据, 供下游的标签坐标换算使用。
package geometry

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/getcharzp/go-imgaug"
)

// ErrPadTooSmall 填充目标尺寸小于原图尺寸
var ErrPadTooSmall = errors.New("填充目标尺寸小于原图")

// Expansion 随机扩张的放置信息
type Expansion struct {
	OffsetX   int // 原图在画布内的横向偏移
	OffsetY   int // 原图在画布内的纵向偏移
	NewWidth  int // 画布宽度
	NewHeight int // 画布高度
}

// FlipHorizontal 水平翻转
func FlipHorizontal(src *imgaug.Image) *imgaug.Image {
	dst := imgaug.NewImage(src.H, src.W, src.C)
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			si := (y*src.W + x) * src.C
			di := (y*src.W + (src.W - 1 - x)) * src.C
			copy(dst.Data[di:di+src.C], src.Data[si:si+src.C])
		}
	}
	return dst
}

// RandomExpand 将原图随机放置到更大的零填充画布上
//
// maxRatio 小于等于 1 时原样返回, 元数据退化为 (0, 0, w, h)。
//
// # Params:
//
//	src: 原图
//	maxRatio: 画布相对原图的最大扩张比例
//	keepRatio: 是否保持画布与原图宽高比一致
//	rng: 随机源
func RandomExpand(src *imgaug.Image, maxRatio float32, keepRatio bool, rng *rand.Rand) (*imgaug.Image, Expansion) {
	if maxRatio <= 1 {
		return src, Expansion{NewWidth: src.W, NewHeight: src.H}
	}

	ratioX := 1 + rng.Float32()*(maxRatio-1)
	ratioY := ratioX
	if !keepRatio {
		ratioY = 1 + rng.Float32()*(maxRatio-1)
	}

	oh := int(float32(src.H) * ratioY)
	ow := int(float32(src.W) * ratioX)
	offY := rng.IntN(oh - src.H + 1)
	offX := rng.IntN(ow - src.W + 1)

	dst := imgaug.NewImage(oh, ow, src.C)
	row := src.W * src.C
	for y := 0; y < src.H; y++ {
		di := ((offY+y)*ow + offX) * src.C
		copy(dst.Data[di:di+row], src.Data[y*row:(y+1)*row])
	}
	return dst, Expansion{
		OffsetX:   offX,
		OffsetY:   offY,
		NewWidth:  ow,
		NewHeight: oh,
	}
}

// RescaleKeepAspect 保持宽高比缩放, 使图片在两个方向上都放入目标框内
//
// 返回缩放后的图片与实际使用的缩放系数, 下游用同一系数换算标签坐标。
//
// # Params:
//
//	src: 原图
//	targetH, targetW: 目标框尺寸
func RescaleKeepAspect(src *imgaug.Image, targetH, targetW int) (*imgaug.Image, float32) {
	longEdge := float32(max(targetH, targetW))
	shortEdge := float32(min(targetH, targetW))
	scale := min(
		longEdge/float32(max(src.H, src.W)),
		shortEdge/float32(min(src.H, src.W)),
	)

	newW := int(float32(src.W)*scale + 0.5)
	newH := int(float32(src.H)*scale + 0.5)
	return resizeBilinear(src, newH, newW), scale
}

// PadToSquare 零填充为 size x size 的正方形画布, 原图置于左上角
//
// 原图任一边超过 size 时返回 ErrPadTooSmall, 不做截断。
//
// # Params:
//
//	src: 原图
//	size: 目标边长
func PadToSquare(src *imgaug.Image, size int) (*imgaug.Image, error) {
	if src.H > size {
		return nil, fmt.Errorf("%w: 高度 %d 超过目标边长 %d", ErrPadTooSmall, src.H, size)
	}
	if src.W > size {
		return nil, fmt.Errorf("%w: 宽度 %d 超过目标边长 %d", ErrPadTooSmall, src.W, size)
	}
	return padTopLeft(src, size, size), nil
}

// PadToMultiple 高宽分别零填充到不小于原尺寸的最小 divisor 整数倍
//
// # Params:
//
//	src: 原图
//	divisor: 除数, 需为正数
func PadToMultiple(src *imgaug.Image, divisor int) *imgaug.Image {
	padH := (src.H + divisor - 1) / divisor * divisor
	padW := (src.W + divisor - 1) / divisor * divisor
	return padTopLeft(src, padH, padW)
}

func padTopLeft(src *imgaug.Image, h, w int) *imgaug.Image {
	dst := imgaug.NewImage(h, w, src.C)
	row := src.W * src.C
	for y := 0; y < src.H; y++ {
		copy(dst.Data[y*w*src.C:y*w*src.C+row], src.Data[y*row:(y+1)*row])
	}
	return dst
}

// resizeBilinear 双线性插值缩放, 采样点按像素中心对齐
func resizeBilinear(src *imgaug.Image, dstH, dstW int) *imgaug.Image {
	dst := imgaug.NewImage(dstH, dstW, src.C)
	xRatio := float64(src.W) / float64(dstW)
	yRatio := float64(src.H) / float64(dstH)

	for y := 0; y < dstH; y++ {
		sy := (float64(y)+0.5)*yRatio - 0.5
		if sy < 0 {
			sy = 0
		}
		y0 := int(math.Floor(sy))
		fy := float32(sy - float64(y0))
		y1 := y0 + 1
		if y1 > src.H-1 {
			y1 = src.H - 1
		}

		for x := 0; x < dstW; x++ {
			sx := (float64(x)+0.5)*xRatio - 0.5
			if sx < 0 {
				sx = 0
			}
			x0 := int(math.Floor(sx))
			fx := float32(sx - float64(x0))
			x1 := x0 + 1
			if x1 > src.W-1 {
				x1 = src.W - 1
			}

			for c := 0; c < src.C; c++ {
				top := src.At(y0, x0, c)*(1-fx) + src.At(y0, x1, c)*fx
				bot := src.At(y1, x0, c)*(1-fx) + src.At(y1, x1, c)*fx
				dst.Set(y, x, c, top*(1-fy)+bot*fy)
			}
		}
	}
	return dst
}
