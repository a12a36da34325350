package shared

import (
	"fmt"
	"lavender/shared/constant"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func ConvertStringToInt(value string) *int {
	if value == "" {
		return nil
	}

	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to int")

		return nil
	}

	return &intValue
}

// NewID returns a fresh record identifier of the form <prefix>_<uuid>.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

// SplitAndTrim splits a comma separated list, trimming every entry and dropping empty ones.
func SplitAndTrim(value string) []string {
	result := []string{}

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != constant.Empty {
			result = append(result, part)
		}
	}

	return result
}

// TrimAll trims every entry and drops the empty ones.
func TrimAll(values []string) []string {
	result := make([]string, 0, len(values))

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != constant.Empty {
			result = append(result, value)
		}
	}

	return result
}

// BuildCacheKey joins the parts of a cache key with colons.
func BuildCacheKey(prefix string, parts ...any) string {
	key := strings.Builder{}
	key.WriteString(prefix)

	for _, part := range parts {
		key.WriteString(":")
		key.WriteString(fmt.Sprint(part))
	}

	return key.String()
}
