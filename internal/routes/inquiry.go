package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/authz"
	"quotation-system/internal/controllers"
	"quotation-system/pkg/constants"
)

func runInquiryRouter(
	secureGroup *echo.Group,
	inquiryCtrl *controllers.InquiryController,
	attachmentCtrl *controllers.AttachmentController,
	logger *zap.Logger,
) {
	salesOrAdmin := authz.RequireRoles(logger, constants.RoleAdmin, constants.RoleSales)
	{
		secureGroup.GET("/inquiries", inquiryCtrl.GetInquiries)
		secureGroup.GET("/inquiries/:id", inquiryCtrl.FindInquiry)
		secureGroup.POST("/inquiries", inquiryCtrl.CreateInquiry, salesOrAdmin)
		secureGroup.PUT("/inquiries/:id", inquiryCtrl.UpdateInquiry, salesOrAdmin)
		secureGroup.DELETE("/inquiries/:id", inquiryCtrl.DeleteInquiry,
			authz.RequireRoles(logger, constants.RoleAdmin))

		secureGroup.GET("/inquiries/:id/attachments", attachmentCtrl.ListAttachments)
		secureGroup.POST("/inquiries/:id/attachments", attachmentCtrl.UploadAttachment)
		secureGroup.GET("/inquiries/:id/attachments/:attachmentId", attachmentCtrl.DownloadAttachment)
		secureGroup.DELETE("/inquiries/:id/attachments/:attachmentId", attachmentCtrl.DeleteAttachment, salesOrAdmin)
	}
}
