package api

import (
	"strconv"
	"strings"

	"homecollection/internal/entity"

	"github.com/gin-gonic/gin"
)

// listParams 读取 skip/limit 查询参数。非法值不报错，统一收敛到默认值或边界。
func (h *HTTPHandler) listParams(c *gin.Context) entity.ListParams {
	params := entity.ListParams{
		Skip:  queryInt(c, "skip"),
		Limit: queryInt(c, "limit"),
	}
	return params.Normalize(h.maxLimit)
}

func queryInt(c *gin.Context, key string) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

// parseID 解析路径参数 id，要求为正整数
func parseID(c *gin.Context) (uint, bool) {
	rawID := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
