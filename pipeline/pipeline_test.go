package pipeline

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/getcharzp/go-imgaug"
)

func testImage(h, w int) *imgaug.Image {
	m := imgaug.NewImage(h, w, 3)
	for i := range m.Data {
		m.Data[i] = float32((i * 29) % 256)
	}
	return m
}

func TestNewValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputSizes = nil
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("空输入尺寸列表应报错")
	}

	cfg = DefaultConfig()
	cfg.InputSizes = []int{0}
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("非正输入尺寸应报错")
	}

	cfg = DefaultConfig()
	cfg.Std[1] = 0
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("零标准差应报错")
	}

	cfg = DefaultConfig()
	cfg.PadMode = PadMultiple
	cfg.PadDivisor = 0
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("非正填充除数应报错")
	}
}

func TestProcessPadSquare(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputSizes = []int{64}

	p, err := New(cfg, rand.New(rand.NewPCG(5, 5)))
	if err != nil {
		t.Fatalf("创建流水线失败: %v", err)
	}

	out, meta, err := p.Process(testImage(30, 50))
	if err != nil {
		t.Fatalf("预处理失败: %v", err)
	}

	if out.H != 64 || out.W != 64 || out.C != 3 {
		t.Fatalf("输出形状应为 64x64x3: %dx%dx%d", out.H, out.W, out.C)
	}
	if meta.InputSize != 64 {
		t.Fatalf("元数据输入边长错误: %d", meta.InputSize)
	}
	if meta.ScaleFactor <= 0 {
		t.Fatalf("缩放系数必须为正数: %v", meta.ScaleFactor)
	}
}

func TestProcessPadMultiple(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputSizes = []int{64}
	cfg.PadMode = PadMultiple
	cfg.PadDivisor = 32

	p, err := New(cfg, rand.New(rand.NewPCG(2, 8)))
	if err != nil {
		t.Fatalf("创建流水线失败: %v", err)
	}

	out, _, err := p.Process(testImage(30, 50))
	if err != nil {
		t.Fatalf("预处理失败: %v", err)
	}
	if out.H%32 != 0 || out.W%32 != 0 {
		t.Fatalf("输出高宽应为 32 的整数倍: %dx%d", out.H, out.W)
	}
	if out.H > 64 || out.W > 64 {
		t.Fatalf("输出尺寸超出预期: %dx%d", out.H, out.W)
	}
}

func TestProcessDeterministic(t *testing.T) {
	src := testImage(40, 60)

	run := func() (*imgaug.Image, Meta) {
		cfg := DefaultCOCOConfig()
		cfg.InputSizes = []int{96}
		p, err := New(cfg, rand.New(rand.NewPCG(42, 42)))
		if err != nil {
			t.Fatalf("创建流水线失败: %v", err)
		}
		out, meta, err := p.Process(src)
		if err != nil {
			t.Fatalf("预处理失败: %v", err)
		}
		return out, meta
	}

	a, metaA := run()
	b, metaB := run()

	if metaA != metaB {
		t.Fatalf("相同随机种子的元数据不一致: %+v != %+v", metaA, metaB)
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("相同随机种子的输出不一致: a[%d] = %v, b[%d] = %v", i, a.Data[i], i, b.Data[i])
		}
	}
}

func TestProcessMetaContainment(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputSizes = []int{64, 96, 128}

	p, err := New(cfg, rand.New(rand.NewPCG(9, 1)))
	if err != nil {
		t.Fatalf("创建流水线失败: %v", err)
	}

	for iter := 0; iter < 20; iter++ {
		h, w := 20+iter, 35+iter
		_, meta, err := p.Process(testImage(h, w))
		if err != nil {
			t.Fatalf("预处理失败: %v", err)
		}

		exp := meta.Expansion
		if exp.OffsetX < 0 || exp.OffsetX+w > exp.NewWidth {
			t.Fatalf("扩张元数据横向越界: %+v, w = %d", exp, w)
		}
		if exp.OffsetY < 0 || exp.OffsetY+h > exp.NewHeight {
			t.Fatalf("扩张元数据纵向越界: %+v, h = %d", exp, h)
		}
	}
}

func TestProcessImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 50; x++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x * 5), G: uint8(y * 8), B: 60, A: 255})
		}
	}

	cfg := DefaultConfig()
	cfg.InputSizes = []int{64}

	p, err := New(cfg, rand.New(rand.NewPCG(3, 3)))
	if err != nil {
		t.Fatalf("创建流水线失败: %v", err)
	}

	out, _, err := p.ProcessImage(src)
	if err != nil {
		t.Fatalf("预处理失败: %v", err)
	}
	if out.H != 64 || out.W != 64 || out.C != 3 {
		t.Fatalf("输出形状应为 64x64x3: %dx%dx%d", out.H, out.W, out.C)
	}
	if len(out.ToCHW()) != 3*64*64 {
		t.Fatalf("CHW 张量长度错误: %d", len(out.ToCHW()))
	}
}

func TestAnchorsLabelsPassthrough(t *testing.T) {
	p, err := New(DefaultCOCOConfig(), nil)
	if err != nil {
		t.Fatalf("创建流水线失败: %v", err)
	}
	if len(p.Anchors()) != 9 {
		t.Fatalf("COCO 先验框数量错误: %d", len(p.Anchors()))
	}
	if len(p.Labels()) != 80 {
		t.Fatalf("COCO 类别数量错误: %d", len(p.Labels()))
	}

	v, err := New(DefaultVOCConfig(), nil)
	if err != nil {
		t.Fatalf("创建流水线失败: %v", err)
	}
	if len(v.Anchors()) != 9 || len(v.Labels()) != 20 {
		t.Fatalf("VOC 配置错误: %d 个先验框, %d 个类别", len(v.Anchors()), len(v.Labels()))
	}
}
