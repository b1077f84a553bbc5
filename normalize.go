package imgaug

// 常用的均值和方差 (0-255 值域)
var (
	ImageNetMean = [3]float32{123.675, 116.28, 103.53}
	ImageNetStd  = [3]float32{58.395, 57.12, 57.375}
)

// Normalize 归一化: ((v - mean) / std) / 255
//
// 调用方需保证 std 各分量非零。输入为三通道张量。
//
// # Params:
//
//	src: 输入张量, 像素取值范围 [0, 255]
//	mean: 各通道均值
//	std: 各通道标准差
func Normalize(src *Image, mean, std [3]float32) *Image {
	dst := NewImage(src.H, src.W, src.C)
	for i, v := range src.Data {
		c := i % src.C
		dst.Data[i] = (v - mean[c]) / std[c] / 255.0
	}
	return dst
}

// Denormalize 反归一化, 是 Normalize 的精确逆运算: v * 255 * std + mean
//
// # Params:
//
//	src: 归一化后的张量
//	mean: 各通道均值
//	std: 各通道标准差
func Denormalize(src *Image, mean, std [3]float32) *Image {
	dst := NewImage(src.H, src.W, src.C)
	for i, v := range src.Data {
		c := i % src.C
		dst.Data[i] = v*255.0*std[c] + mean[c]
	}
	return dst
}
