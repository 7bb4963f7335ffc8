package models

import "math"

// Round2 金额统一保留两位小数
// 写入时取整一次，读取/汇总时再取整一次，保证输出稳定
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
