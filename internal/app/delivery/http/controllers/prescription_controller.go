package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
}

var (
	prescriptionControllerInstance *PrescriptionController
	oncePrescriptionController     sync.Once
)

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase) *PrescriptionController {
	oncePrescriptionController.Do(func() {
		prescriptionControllerInstance = &PrescriptionController{
			Log:                 logger,
			PrescriptionUsecase: prescriptionUsecase,
		}
	})
	return prescriptionControllerInstance
}

func (ctrl *PrescriptionController) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreatePrescription)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.Create(ctx, claims, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PrescriptionCreatedSuccess, result)
}

func (ctrl *PrescriptionController) List(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	page := intQueryParam(r, "page", 1)
	pageSize := intQueryParam(r, "page_size", 10)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.PrescriptionUsecase.List(ctx, claims, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PrescriptionListSuccess, pagination, result)
}

func (ctrl *PrescriptionController) GetByID(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	prescriptionID, err := uintURLParam(r, "prescriptionID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.GetByID(ctx, claims, prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionGetSuccess, result)
}
