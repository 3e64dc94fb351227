package dto

type AnalyzeContractRequest struct {
	ContractText string `json:"contract_text" validate:"required"`
	ContractType string `json:"contract_type"`
}

type ContractAnalysisResponse struct {
	Analysis     string `json:"analysis"`
	ContractType string `json:"contract_type"`
}

type DetectFraudRequest struct {
	Description string `json:"description" validate:"required"`
}

type FraudAnalysisResponse struct {
	FraudAnalysis string `json:"fraud_analysis"`
}

type GenerateTemplateRequest struct {
	DocumentType string `json:"document_type" validate:"required"`
	Details      string `json:"details"`
}

type DocumentTemplateResponse struct {
	Template     string `json:"template"`
	DocumentType string `json:"document_type"`
}

type FinancialEducationRequest struct {
	Topic string `json:"topic" validate:"required"`
}

type FinancialEducationResponse struct {
	EducationContent string `json:"education_content"`
	Topic            string `json:"topic"`
}
