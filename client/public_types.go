package client

import (
	"github.com/Jinansh2608/ledger-backend/client/internal/types"
	"github.com/Jinansh2608/ledger-backend/client/internal/uploadqueue"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Shared
	Envelope      = types.Envelope
	Status        = types.Status
	Date          = types.Date
	PaymentStatus = types.PaymentStatus
	Vendor        = types.Vendor
	UploadFile    = types.UploadFile

	// Requests
	CreatePORequest                  = types.CreatePORequest
	CreateClientPORequest            = types.CreateClientPORequest
	UpdatePORequest                  = types.UpdatePORequest
	LineItemRequest                  = types.LineItemRequest
	LineItemUpdateRequest            = types.LineItemUpdateRequest
	VerbalAgreementRequest           = types.VerbalAgreementRequest
	AddPOToVerbalAgreementRequest    = types.AddPOToVerbalAgreementRequest
	CreateProjectRequest             = types.CreateProjectRequest
	CreateBillingPORequest           = types.CreateBillingPORequest
	UpdateBillingPORequest           = types.UpdateBillingPORequest
	BillingLineItemRequest           = types.BillingLineItemRequest
	VendorOrderRequest               = types.VendorOrderRequest
	BulkCreateVendorOrdersRequest    = types.BulkCreateVendorOrdersRequest
	VendorOrderUpdateRequest         = types.VendorOrderUpdateRequest
	VendorOrderStatusRequest         = types.VendorOrderStatusRequest
	VendorOrderLineItemRequest       = types.VendorOrderLineItemRequest
	VendorOrderLineItemUpdateRequest = types.VendorOrderLineItemUpdateRequest
	BulkLineItemsRequest             = types.BulkLineItemsRequest
	ApproveBillingPORequest          = types.ApproveBillingPORequest
	LoginRequest                     = types.LoginRequest
	UpdateProjectRequest             = types.UpdateProjectRequest
	PaymentRequest                   = types.PaymentRequest
	PaymentUpdateRequest             = types.PaymentUpdateRequest
	VendorRequest                    = types.VendorRequest
	VendorUpdateRequest              = types.VendorUpdateRequest
	VendorPaymentRequest             = types.VendorPaymentRequest
	VendorPaymentUpdateRequest       = types.VendorPaymentUpdateRequest
	PaymentLinkRequest               = types.PaymentLinkRequest

	// Domain entities
	ClientPO            = types.ClientPO
	ClientPOItem        = types.ClientPOItem
	LineItem            = types.LineItem
	POSummary           = types.POSummary
	UpdatedPO           = types.UpdatedPO
	VerbalAgreement     = types.VerbalAgreement
	PaymentDetail       = types.PaymentDetail
	EnrichedPO          = types.EnrichedPO
	BillingPO           = types.BillingPO
	BillingLineItem     = types.BillingLineItem
	VendorOrder         = types.VendorOrder
	VendorOrderLineItem = types.VendorOrderLineItem
	User                = types.User
	Project             = types.Project
	PODetail            = types.PODetail
	PODetailLineItem    = types.PODetailLineItem
	Payment             = types.Payment
	PaymentState        = types.PaymentState
	VendorProfile       = types.VendorProfile
	VendorPayment       = types.VendorPayment
	PaymentLink         = types.PaymentLink
	LinkType            = types.LinkType

	// Upload responses
	ParsedPO           = types.ParsedPO
	ParsedLineItem     = types.ParsedLineItem
	ParseSummary       = types.ParseSummary
	POParseResponse    = types.POParseResponse
	UploadedPO         = types.UploadedPO
	UploadFailure      = types.UploadFailure
	BulkUploadResponse = types.BulkUploadResponse

	// Responses
	MessageResponse                   = types.MessageResponse
	GetClientPOResponse               = types.GetClientPOResponse
	LineItemResponse                  = types.LineItemResponse
	GetLineItemsResponse              = types.GetLineItemsResponse
	FailedLineItem                    = types.FailedLineItem
	BulkLineItemsResponse             = types.BulkLineItemsResponse
	GetAllPOsResponse                 = types.GetAllPOsResponse
	CreatePOResponse                  = types.CreatePOResponse
	GetProjectPOsResponse             = types.GetProjectPOsResponse
	AttachPOResponse                  = types.AttachPOResponse
	SetPrimaryPOResponse              = types.SetPrimaryPOResponse
	UpdatePOResponse                  = types.UpdatePOResponse
	DeletePOResponse                  = types.DeletePOResponse
	CreateVerbalAgreementResponse     = types.CreateVerbalAgreementResponse
	AddPOToVerbalAgreementResponse    = types.AddPOToVerbalAgreementResponse
	GetVerbalAgreementsResponse       = types.GetVerbalAgreementsResponse
	CreateProjectResponse             = types.CreateProjectResponse
	DeleteProjectResponse             = types.DeleteProjectResponse
	FinancialData                     = types.FinancialData
	FinancialPO                       = types.FinancialPO
	FinancialAgreement                = types.FinancialAgreement
	FinancialPOGroup                  = types.FinancialPOGroup
	FinancialAgreementGroup           = types.FinancialAgreementGroup
	PaymentStatusCounts               = types.PaymentStatusCounts
	BillingFinancial                  = types.BillingFinancial
	BillingDelta                      = types.BillingDelta
	FinancialSummaryResponse          = types.FinancialSummaryResponse
	EnrichedPOsResponse               = types.EnrichedPOsResponse
	BillingPOResponse                 = types.BillingPOResponse
	GetBillingPOResponse              = types.GetBillingPOResponse
	BillingLineItemResponse           = types.BillingLineItemResponse
	GetBillingLineItemsResponse       = types.GetBillingLineItemsResponse
	BillingSummary                    = types.BillingSummary
	ProjectBillingSummaryResponse     = types.ProjectBillingSummaryResponse
	ProfitLossAnalysis                = types.ProfitLossAnalysis
	ProjectProfitLossResponse         = types.ProjectProfitLossResponse
	PLAnalysisData                    = types.PLAnalysisData
	ProjectPLAnalysisResponse         = types.ProjectPLAnalysisResponse
	ApproveBillingPOResponse          = types.ApproveBillingPOResponse
	VendorOrderResponse               = types.VendorOrderResponse
	BulkCreateVendorOrdersResponse    = types.BulkCreateVendorOrdersResponse
	ProjectVendorOrdersResponse       = types.ProjectVendorOrdersResponse
	VendorOrderLineItemResponse       = types.VendorOrderLineItemResponse
	VendorOrderLineItemsResponse      = types.VendorOrderLineItemsResponse
	VendorOrderPaymentSummary         = types.VendorOrderPaymentSummary
	VendorOrderPaymentSummaryResponse = types.VendorOrderPaymentSummaryResponse
	VendorOrderProfitAnalysisResponse = types.VendorOrderProfitAnalysisResponse
	TokenResponse                     = types.TokenResponse
	HealthResponse                    = types.HealthResponse
	ProjectResponse                   = types.ProjectResponse
	ProjectsResponse                  = types.ProjectsResponse
	PODetailResponse                  = types.PODetailResponse
	CreatePaymentResponse             = types.CreatePaymentResponse
	POPaymentTotals                   = types.POPaymentTotals
	POPaymentsResponse                = types.POPaymentsResponse
	PaymentsPageResponse              = types.PaymentsPageResponse
	VendorResponse                    = types.VendorResponse
	VendorsResponse                   = types.VendorsResponse
	VendorPaymentHistoryResponse      = types.VendorPaymentHistoryResponse
	VendorPayables                    = types.VendorPayables
	VendorPayablesResponse            = types.VendorPayablesResponse
	VendorPaymentResponse             = types.VendorPaymentResponse
	VendorOrderPaymentTotals          = types.VendorOrderPaymentTotals
	VendorOrderPaymentsResponse       = types.VendorOrderPaymentsResponse
	PaymentLinkResponse               = types.PaymentLinkResponse
	LinkedPaymentsResponse            = types.LinkedPaymentsResponse

	// Upload queue
	UploadQueueConfig = uploadqueue.Config
)

const (
	StatusSuccess        = types.StatusSuccess
	StatusPartialSuccess = types.StatusPartialSuccess
	StatusFailed         = types.StatusFailed
	StatusError          = types.StatusError

	VendorBajaj     = types.VendorBajaj
	VendorDavaIndia = types.VendorDavaIndia

	PaymentStatePending = types.PaymentStatePending
	PaymentStateCleared = types.PaymentStateCleared
	PaymentStateBounced = types.PaymentStateBounced

	LinkIncoming = types.LinkIncoming
	LinkOutgoing = types.LinkOutgoing
)

// ParseVendor maps "bajaj" or "dava-india" onto a Vendor.
func ParseVendor(s string) (Vendor, error) { return types.ParseVendor(s) }

// NewDate formats t as the YYYY-MM-DD wire date.
var NewDate = types.NewDate
