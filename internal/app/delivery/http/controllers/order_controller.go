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

type OrderController struct {
	Log          *zap.Logger
	OrderUsecase contracts.OrderUsecase
}

var (
	orderControllerInstance *OrderController
	onceOrderController     sync.Once
)

func NewOrderController(logger *zap.Logger, orderUsecase contracts.OrderUsecase) *OrderController {
	onceOrderController.Do(func() {
		orderControllerInstance = &OrderController{
			Log:          logger,
			OrderUsecase: orderUsecase,
		}
	})
	return orderControllerInstance
}

func (ctrl *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateMedicineOrder)
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

	result, err := ctrl.OrderUsecase.Create(ctx, claims, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OrderPlacedSuccess, result)
}

func (ctrl *OrderController) List(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.ListOrders{
		Status:   r.URL.Query().Get("status"),
		Page:     intQueryParam(r, "page", 1),
		PageSize: intQueryParam(r, "page_size", 10),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.OrderUsecase.List(ctx, claims, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.OrderListSuccess, pagination, result)
}

func (ctrl *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	orderID, err := uintURLParam(r, "orderID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateOrderStatus)
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

	if err := ctrl.OrderUsecase.UpdateStatus(ctx, claims, orderID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderUpdatedSuccess, nil)
}

func (ctrl *OrderController) Cancel(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	orderID, err := uintURLParam(r, "orderID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CancelOrder)
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

	if err := ctrl.OrderUsecase.Cancel(ctx, claims, orderID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderCancelledSuccess, nil)
}
