package service

import (
	"fmt"
	"strings"
)

// DefaultPublicBase 是本地存储文件对外暴露的 URL 前缀。
const DefaultPublicBase = "/uploads"

// NormalisePublicBase 规范化公共 URL 基础路径
func NormalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = DefaultPublicBase
	}
	if IsAbsoluteURL(trimmed) {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}

// IsAbsoluteURL 判断是否为 http(s) 绝对地址
func IsAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// PublicURL 将存储对象键拼接为可访问的 URL 路径
func PublicURL(base, key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return ""
	}
	if IsAbsoluteURL(trimmed) {
		return trimmed
	}
	base = NormalisePublicBase(base)
	return fmt.Sprintf("%s/%s", base, strings.TrimLeft(trimmed, "/"))
}
