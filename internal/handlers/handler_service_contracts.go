package handlers

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type serviceContractHandler struct {
	recordEndpoints[domain.ServiceContract]
}

func registerServiceContractRoutes(rg *gin.RouterGroup, svc portssvc.ServiceContractSvcFacade) {
	h := &serviceContractHandler{recordEndpoints[domain.ServiceContract]{svc: svc, name: "service contract"}}

	contracts := rg.Group("/service-contracts")
	{
		contracts.GET("", h.listContracts)
		contracts.POST("", h.createContract)
		contracts.GET("/:id", h.getContract)
		contracts.PUT("/:id", h.updateContract)
		contracts.DELETE("/:id", h.deleteContract)
	}
}

// listContracts godoc
// @Summary List service contracts
// @Tags service-contracts
// @Produce json
// @Param stage query string false "Stage" Enums(Warm, Hot, Closed)
// @Param status query string false "Status"
// @Param search query string false "Substring of client name or contract info"
// @Param limit query int false "Page size" default(25)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListResponse[domain.ServiceContract]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-contracts [get]
func (h *serviceContractHandler) listContracts(c *gin.Context) {
	h.list(c, &dto.ServiceContractListParams{})
}

// getContract godoc
// @Summary Get a service contract
// @Tags service-contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} domain.ServiceContract
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-contracts/{id} [get]
func (h *serviceContractHandler) getContract(c *gin.Context) {
	h.get(c)
}

// createContract godoc
// @Summary Create a service contract
// @Tags service-contracts
// @Accept json
// @Produce json
// @Param contract body dto.CreateServiceContractRequest true "Contract"
// @Success 201 {object} domain.ServiceContract
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-contracts [post]
func (h *serviceContractHandler) createContract(c *gin.Context) {
	var req dto.CreateServiceContractRequest
	if !bindJSON(c, &req) {
		return
	}
	h.create(c, req.ToDomain())
}

// updateContract godoc
// @Summary Update a service contract
// @Tags service-contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param contract body dto.UpdateServiceContractRequest true "Fields to change"
// @Success 200 {object} domain.ServiceContract
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-contracts/{id} [put]
func (h *serviceContractHandler) updateContract(c *gin.Context) {
	var req dto.UpdateServiceContractRequest
	if !bindJSON(c, &req) {
		return
	}
	h.update(c, req.Patch())
}

// deleteContract godoc
// @Summary Delete a service contract
// @Tags service-contracts
// @Param id path string true "Contract ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-contracts/{id} [delete]
func (h *serviceContractHandler) deleteContract(c *gin.Context) {
	h.delete(c)
}
