package preset

import "testing"

func TestTables(t *testing.T) {
	if len(COCOAnchors) != 9 || len(VOCAnchors) != 9 {
		t.Fatalf("先验框数量错误: COCO %d, VOC %d", len(COCOAnchors), len(VOCAnchors))
	}
	if len(COCOLabels) != 80 || len(VOCLabels) != 20 {
		t.Fatalf("类别数量错误: COCO %d, VOC %d", len(COCOLabels), len(VOCLabels))
	}

	for i, a := range append(append([]Anchor{}, COCOAnchors...), VOCAnchors...) {
		if a.W <= 0 || a.H <= 0 {
			t.Fatalf("先验框尺寸必须为正数: anchors[%d] = %+v", i, a)
		}
	}
	for i, l := range append(append([]string{}, COCOLabels...), VOCLabels...) {
		if l == "" {
			t.Fatalf("类别名不能为空: labels[%d]", i)
		}
	}
}
