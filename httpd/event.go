package httpd

import (
	"fmt"
	"net/http"

	"github.com/lodastack/log"

	"github.com/vistack/dashboard/config"
	"github.com/vistack/dashboard/utils"
)

var purgeStatusUrl string = "%s?project=%s&monitor=%s"

// purgeMonitorStatus tells the alert side to drop the cached status of
// a monitor after it is disconnected. Best effort, a miss only leaves
// a stale row in the status cache.
func purgeMonitorStatus(project string, monitorIDs ...string) error {
	if len(monitorIDs) == 0 || project == "" {
		return ErrInvalidParam
	}
	if config.C.ReportConf.PurgeURL == "" {
		return nil
	}

	for _, id := range monitorIDs {
		q := utils.HttpQuery{
			Timeout:  3,
			Method:   http.MethodPost,
			Url:      fmt.Sprintf(purgeStatusUrl, config.C.ReportConf.PurgeURL, project, id),
			BodyType: utils.Raw,
		}
		if err := q.DoQuery(); err != nil || q.Result.Status > 299 {
			log.Errorf("purge project %s monitor %s status fail", project, id)
		}
	}
	return nil
}
