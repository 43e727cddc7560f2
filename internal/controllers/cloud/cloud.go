// Package cloud implements the remote-store endpoint. Any instance
// serving it can act as the cloud copy for other instances: GET with
// action=getAll returns the full ledger, POST overwrites it, any other
// GET answers as a readiness probe.
package cloud

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/familybiz/backend/internal/httputil"
	"github.com/familybiz/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// lockWait bounds how long a request waits for the store lock before
// giving up. Two concurrent full-overwrite pushes must never interleave
// their writes.
const lockWait = 30 * time.Second

// lock serializes all requests to the endpoint.
var lock = make(chan struct{}, 1)

func acquire() bool {
	select {
	case lock <- struct{}{}:
		return true
	case <-time.After(lockWait):
		return false
	}
}

func release() {
	<-lock
}

type statusReply struct {
	Status  string `json:"status" example:"ready"`
	Message string `json:"message,omitempty"`
}

func replyError(c *gin.Context, code int, err error) {
	c.JSON(code, statusReply{Status: "error", Message: err.Error()})
}

// RegisterRoutes registers the cloud endpoint on the passed group.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", Get)
	r.POST("", Replace)
}

// @Summary		Cloud store
// @Description	With action=getAll, returns the full ledger. Any other GET is a readiness probe.
// @Tags			Cloud
// @Produce		json
// @Success		200		{object}	models.Ledger
// @Failure		503		{object}	statusReply
// @Failure		500		{object}	statusReply
// @Param			action	query		string	false	"getAll to fetch the ledger"
// @Router			/cloud [get]
func Get(c *gin.Context) {
	if c.Query("action") != "getAll" {
		c.JSON(http.StatusOK, statusReply{Status: "ready", Message: "familybiz cloud endpoint"})
		return
	}

	if !acquire() {
		replyError(c, http.StatusServiceUnavailable, errLockTimeout)
		return
	}
	defer release()

	ledger, err := models.Snapshot(models.DB)
	if err != nil {
		replyError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, ledger)
}

// @Summary		Replace the cloud store
// @Description	Overwrites the full ledger with the posted one
// @Tags			Cloud
// @Accept			json
// @Produce		json
// @Success		200		{object}	statusReply
// @Failure		400		{object}	statusReply
// @Failure		503		{object}	statusReply
// @Failure		500		{object}	statusReply
// @Param			ledger	body		models.Ledger	true	"The full ledger"
// @Router			/cloud [post]
func Replace(c *gin.Context) {
	var ledger models.Ledger
	if err := json.NewDecoder(c.Request.Body).Decode(&ledger); err != nil {
		replyError(c, http.StatusBadRequest, errPayloadInvalid)
		return
	}

	if !acquire() {
		replyError(c, http.StatusServiceUnavailable, errLockTimeout)
		return
	}
	defer release()

	if err := models.Replace(models.DB, ledger); err != nil {
		replyError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, statusReply{Status: "success"})
}
