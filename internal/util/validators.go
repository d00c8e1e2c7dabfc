package util

import (
	"net/url"

	"fritter-backend/config"

	"github.com/go-playground/validator/v10"
)

// IsValidSourceURL 检查引用来源是否是合法的 URL。
// 默认接受任何可解析的绝对 URL；配置了 SOURCE_SCHEMES 时只接受列出的 scheme。
func IsValidSourceURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	if len(config.AppConfig.SourceSchemes) == 0 {
		return true
	}
	for _, scheme := range config.AppConfig.SourceSchemes {
		if u.Scheme == scheme {
			return true
		}
	}
	return false
}

// ValidateSourceURL 是注册到 gin binding 的自定义验证器
func ValidateSourceURL(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return IsValidSourceURL(s)
}
