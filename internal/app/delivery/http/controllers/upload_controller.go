package controllers

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"medibridge-service/internal/app/config"
	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var allowedUploadExtensions = map[string]string{
	".jpg":  constvars.MIMEImageJPEG,
	".jpeg": constvars.MIMEImageJPEG,
	".png":  constvars.MIMEImagePNG,
	".pdf":  constvars.MIMEApplicationPDF,
}

var allowedUploadFields = map[string]bool{
	constvars.UploadFieldCertificate:  true,
	constvars.UploadFieldPrescription: true,
	constvars.UploadFieldLicense:      true,
}

type UploadController struct {
	Log            *zap.Logger
	Storage        contracts.Storage
	InternalConfig *config.InternalConfig
}

var (
	uploadControllerInstance *UploadController
	onceUploadController     sync.Once
)

func NewUploadController(logger *zap.Logger, storage contracts.Storage, internalConfig *config.InternalConfig) *UploadController {
	onceUploadController.Do(func() {
		uploadControllerInstance = &UploadController{
			Log:            logger,
			Storage:        storage,
			InternalConfig: internalConfig,
		}
	})
	return uploadControllerInstance
}

// Upload accepts a multipart form with a "type" field naming the document
// kind and a "file" part holding the document itself.
func (ctrl *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	maxSize := ctrl.InternalConfig.Upload.MaxSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUploadTooLarge(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	fieldName := r.FormValue("type")
	if !allowedUploadFields[fieldName] {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(nil))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	if fileHeader.Size > maxSize {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUploadTooLarge(nil))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedUploadExtensions[ext]
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUploadTypeNotAllowed(nil))
		return
	}

	objectName := utils.GenerateObjectName(fieldName, fileHeader.Filename)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	storedName, err := ctrl.Storage.UploadFile(ctx, file, objectName, contentType, fileHeader.Size)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "file_uploaded", utils.GetRequestID(r.Context()),
		zap.String("object_name", storedName),
		zap.String("field", fieldName),
	)

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadSuccess, responses.Upload{
		FileName: storedName,
		FileType: fieldName,
	})
}
