package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careflow/homecare-api/internal/audit"
	"github.com/careflow/homecare-api/internal/httperr"
	"github.com/careflow/homecare-api/internal/middleware"
	"github.com/careflow/homecare-api/internal/models"
	"github.com/careflow/homecare-api/internal/storage"
)

// UserImageHandler stores profile images: multipart upload, webp
// re-encode, object storage, img_url update.
type UserImageHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
	audit    *audit.Dispatcher
}

func NewUserImageHandler(
	db *gorm.DB,
	uploader storage.Uploader,
	audit *audit.Dispatcher,
) *UserImageHandler {
	return &UserImageHandler{db: db, uploader: uploader, audit: audit}
}

func (h *UserImageHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_unavailable")
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found")
			return
		}
		log.Println("get user for image:", err)
		httperr.Internal(c, "failed_to_get_user")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image_file")
		return
	}
	defer file.Close()

	encoded, err := storage.EncodeAvatar(file)
	if err != nil {
		httperr.BadRequest(c, "unsupported_image_format")
		return
	}

	key := fmt.Sprintf("avatars/%d-%s.webp", user.ID, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		log.Println("upload avatar:", err)
		httperr.Internal(c, "failed_to_upload_image")
		return
	}

	user.ImgURL = &url
	if err := h.db.Save(&user).Error; err != nil {
		log.Println("save img_url:", err)
		httperr.Internal(c, "failed_to_update_user")
		return
	}

	h.audit.Dispatch(audit.Event{
		RequestID: middleware.RequestID(c),
		Action:    "user_image_uploaded",
		Entity:    "user",
		EntityID:  &user.ID,
	})

	c.JSON(http.StatusOK, user)
}
