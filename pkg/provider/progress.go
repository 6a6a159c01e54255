package provider

import (
	"github.com/pcj/mobyprogress"
)

func writeLoadProgress(output mobyprogress.Output, current, total int, lastUpdate bool) {
	output.WriteProgress(mobyprogress.Progress{
		ID:         "load",
		Action:     "loading module indexes",
		Current:    int64(current),
		Total:      int64(total),
		Units:      "modules",
		LastUpdate: lastUpdate,
	})
}
