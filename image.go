package imgaug

import (
	"fmt"
	"image"
	"image/color"

	"github.com/up-zero/gotool/imageutil"
	"golang.org/x/image/draw"
)

// Image HWC 排布的浮点图像张量
//
// 变换过程中像素约定取值范围为 [0, 255], 通道顺序固定为 RGB。
// 所有变换函数均返回新分配的张量, 不会原地修改调用方持有的输入。
type Image struct {
	Data []float32 // 长度为 H*W*C, 按行优先排布
	H    int       // 高度
	W    int       // 宽度
	C    int       // 通道数
}

// NewImage 创建 h x w x c 的零值图像张量
func NewImage(h, w, c int) *Image {
	return &Image{
		Data: make([]float32, h*w*c),
		H:    h,
		W:    w,
		C:    c,
	}
}

// At 取 (y, x) 处第 c 通道的值
func (m *Image) At(y, x, c int) float32 {
	return m.Data[(y*m.W+x)*m.C+c]
}

// Set 设置 (y, x) 处第 c 通道的值
func (m *Image) Set(y, x, c int, v float32) {
	m.Data[(y*m.W+x)*m.C+c] = v
}

// Clone 深拷贝
func (m *Image) Clone() *Image {
	dst := NewImage(m.H, m.W, m.C)
	copy(dst.Data, m.Data)
	return dst
}

// FromImage 将标准库图像转换为 [0, 255] 取值的三通道 RGB 张量
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	m := NewImage(bounds.Dy(), bounds.Dx(), 3)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA 返回 0-65535
			m.Data[i] = float32(r >> 8)
			m.Data[i+1] = float32(g >> 8)
			m.Data[i+2] = float32(b >> 8)
			i += 3
		}
	}
	return m
}

// ToImage 将三通道张量转换回 8 位标准库图像, 超出 [0, 255] 的值会被截断
func (m *Image) ToImage() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			dst.SetRGBA(x, y, color.RGBA{
				R: clampByte(m.At(y, x, 0)),
				G: clampByte(m.At(y, x, 1)),
				B: clampByte(m.At(y, x, 2)),
				A: 255,
			})
		}
	}
	return dst
}

// ToCHW 导出 CHW 排布的扁平张量, 供批量训练输入
func (m *Image) ToCHW() []float32 {
	out := make([]float32, len(m.Data))
	plane := m.H * m.W
	for i, v := range m.Data {
		out[(i%m.C)*plane+i/m.C] = v
	}
	return out
}

// Open 读取图片文件并转换为 RGB 张量, 透明通道以白色背景合成
//
// # Params:
//
//	path: 图片路径
func Open(path string) (*Image, error) {
	img, err := imageutil.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开图片失败: %w", err)
	}
	return FromImage(Composite(img)), nil
}

// Composite 以白色背景合成, 移除透明通道
func Composite(img image.Image) image.Image {
	return CompositeColor(img, color.White)
}

// CompositeColor 以指定背景色合成, 移除透明通道
func CompositeColor(img image.Image, c color.Color) image.Image {
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Over)
	return dst
}

func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
