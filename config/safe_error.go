package config

// SafeErrorMessage release 模式下不向客户端暴露内部错误详情，统一返回 fallback
// 开发环境（debug 或未初始化配置）返回原始错误便于排查
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
