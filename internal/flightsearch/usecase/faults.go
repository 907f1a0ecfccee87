package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ejd6617/skybound/internal/flightsearch/provider"
)

// classifyFault logs a failure caught inside a fan-out branch or before
// a top-level call returns empty. It distinguishes provider-reported
// error envelopes, ordinary errors and arbitrary recovered values, and
// it never raises; the fan-out controller depends on that.
func (u *Usecase) classifyFault(ctx context.Context, origin string, value any) {
	switch v := value.(type) {
	case error:
		var respErr *provider.ResponseError
		if errors.As(v, &respErr) {
			u.logProviderFault(ctx, origin, respErr)
			return
		}
		u.logger.ErrorContext(ctx, "flight search branch failed",
			"origin", origin,
			"error", v.Error(),
		)
	default:
		u.logger.ErrorContext(ctx, "flight search branch failed",
			"origin", origin,
			"cause", stringifyFault(v),
		)
	}
}

func (u *Usecase) logProviderFault(ctx context.Context, origin string, respErr *provider.ResponseError) {
	primary := ""
	if len(respErr.Errors) > 0 {
		primary = respErr.Errors[0].Detail
	}
	u.logger.ErrorContext(ctx, "provider reported errors",
		"origin", origin,
		"status", respErr.StatusCode,
		"primary", primary,
		"errors", respErr.Errors,
	)
}

func stringifyFault(value any) string {
	if data, err := json.Marshal(value); err == nil {
		return string(data)
	}
	if s := fmt.Sprintf("%v", value); s != "" {
		return s
	}
	return "non-serializable failure value"
}
