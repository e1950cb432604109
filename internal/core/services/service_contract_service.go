package services

import (
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
)

type serviceContractService struct {
	*recordService[domain.ServiceContract, *domain.ServiceContract]
}

func NewServiceContractService(repo portsrepo.ServiceContractRepositoryFacade, opts ...RecordOption) portssvc.ServiceContractSvcFacade {
	return &serviceContractService{
		recordService: newRecordService[domain.ServiceContract, *domain.ServiceContract](
			"service_contracts", repo, []string{PathServiceContracts, PathDashboard}, opts...),
	}
}

var _ portssvc.ServiceContractSvcFacade = (*serviceContractService)(nil)
