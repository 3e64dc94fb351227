package service

import (
	"context"

	"fin-jurist-be/internal/dto"
	"fin-jurist-be/pkg/advisor"
)

type IAdvisoryService interface {
	AnalyzeContract(ctx context.Context, req *dto.AnalyzeContractRequest) *dto.ContractAnalysisResponse
	DetectFraud(ctx context.Context, req *dto.DetectFraudRequest) *dto.FraudAnalysisResponse
	GenerateTemplate(ctx context.Context, req *dto.GenerateTemplateRequest) *dto.DocumentTemplateResponse
	FinancialEducation(ctx context.Context, req *dto.FinancialEducationRequest) *dto.FinancialEducationResponse
}

type advisoryService struct {
	engine *advisor.Engine
}

func NewAdvisoryService(engine *advisor.Engine) IAdvisoryService {
	return &advisoryService{
		engine: engine,
	}
}

func (s *advisoryService) AnalyzeContract(ctx context.Context, req *dto.AnalyzeContractRequest) *dto.ContractAnalysisResponse {
	contractType := req.ContractType
	if contractType == "" {
		contractType = "financial"
	}
	return &dto.ContractAnalysisResponse{
		Analysis:     s.engine.AnalyzeContract(ctx, req.ContractText, contractType),
		ContractType: contractType,
	}
}

func (s *advisoryService) DetectFraud(ctx context.Context, req *dto.DetectFraudRequest) *dto.FraudAnalysisResponse {
	return &dto.FraudAnalysisResponse{
		FraudAnalysis: s.engine.DetectFraud(ctx, req.Description),
	}
}

func (s *advisoryService) GenerateTemplate(ctx context.Context, req *dto.GenerateTemplateRequest) *dto.DocumentTemplateResponse {
	return &dto.DocumentTemplateResponse{
		Template:     s.engine.GenerateDocumentTemplate(ctx, req.DocumentType, req.Details),
		DocumentType: req.DocumentType,
	}
}

func (s *advisoryService) FinancialEducation(ctx context.Context, req *dto.FinancialEducationRequest) *dto.FinancialEducationResponse {
	return &dto.FinancialEducationResponse{
		EducationContent: s.engine.ProvideFinancialEducation(ctx, req.Topic),
		Topic:            req.Topic,
	}
}
