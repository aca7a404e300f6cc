package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// normalizeTag accepts both the printed tag and the scanned QR payload
// ("bag:B-XXXXXX") and returns the bare tag.
func normalizeTag(raw string) string {
	tag := strings.TrimSpace(raw)
	tag = strings.TrimPrefix(tag, "bag:")
	return strings.ToUpper(tag)
}

func pageParam(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
