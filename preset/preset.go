// Package preset 提供常用检测数据集的先验框与类别表
//
// 这些表在进程启动时加载一次, 只读, 由下游的标签分配阶段消费,
// 预处理核心只负责透传, 不做任何读写。
package preset

// Anchor 先验框尺寸
type Anchor struct {
	W int // 宽
	H int // 高
}

// COCOAnchors COCO 数据集的 9 个先验框
var COCOAnchors = []Anchor{
	{10, 13},
	{16, 30},
	{33, 23},
	{30, 61},
	{62, 45},
	{59, 119},
	{116, 90},
	{156, 198},
	{373, 326},
}

// COCOLabels COCO 数据集的 80 个类别
var COCOLabels = []string{
	"person",
	"bicycle",
	"car",
	"motorbike",
	"aeroplane",
	"bus",
	"train",
	"truck",
	"boat",
	"traffic light",
	"fire hydrant",
	"stop sign",
	"parking meter",
	"bench",
	"bird",
	"cat",
	"dog",
	"horse",
	"sheep",
	"cow",
	"elephant",
	"bear",
	"zebra",
	"giraffe",
	"backpack",
	"umbrella",
	"handbag",
	"tie",
	"suitcase",
	"frisbee",
	"skis",
	"snowboard",
	"sports ball",
	"kite",
	"baseball bat",
	"baseball glove",
	"skateboard",
	"surfboard",
	"tennis racket",
	"bottle",
	"wine glass",
	"cup",
	"fork",
	"knife",
	"spoon",
	"bowl",
	"banana",
	"apple",
	"sandwich",
	"orange",
	"broccoli",
	"carrot",
	"hot dog",
	"pizza",
	"donut",
	"cake",
	"chair",
	"sofa",
	"pottedplant",
	"bed",
	"diningtable",
	"toilet",
	"tvmonitor",
	"laptop",
	"mouse",
	"remote",
	"keyboard",
	"cell phone",
	"microwave",
	"oven",
	"toaster",
	"sink",
	"refrigerator",
	"book",
	"clock",
	"vase",
	"scissors",
	"teddy bear",
	"hair drier",
	"toothbrush",
}

// VOCAnchors 512 分辨率下的 VOC 先验框
var VOCAnchors = []Anchor{
	{19, 35},
	{33, 95},
	{59, 53},
	{63, 174},
	{114, 113},
	{122, 263},
	{282, 206},
	{214, 380},
	{428, 430},
}

// VOCLabels VOC 数据集的 20 个类别
var VOCLabels = []string{
	"aeroplane",
	"bicycle",
	"bird",
	"boat",
	"bottle",
	"bus",
	"car",
	"cat",
	"chair",
	"cow",
	"diningtable",
	"dog",
	"horse",
	"motorbike",
	"person",
	"pottedplant",
	"sheep",
	"sofa",
	"train",
	"tvmonitor",
}

// TrainInputSizes 训练输入边长列表, 多尺度训练时每次随机取一个
var TrainInputSizes = []int{512}

// TestInputSizes 测试输入边长列表
var TestInputSizes = []int{448, 480}
