// service/services.go
package service

import (
	"gorm.io/gorm"

	"github.com/SAHAYOGESHWARAN/guries-sub010/audit"
	"github.com/SAHAYOGESHWARAN/guries-sub010/auth"
	"github.com/SAHAYOGESHWARAN/guries-sub010/dao"
	"github.com/SAHAYOGESHWARAN/guries-sub010/util"
)

type Services struct {
	Asset    IAssetService
	Link     ILinkService
	Taxonomy ITaxonomyService
	Master   IMasterService
}

func InitializeServices(
	db *gorm.DB,
	permissions *auth.Registry,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	assetDAO := dao.NewAssetDAO(db)
	linkDAO := dao.NewLinkDAO(db)
	taxonomyDAO := dao.NewTaxonomyDAO(db)
	masterDAO := dao.NewMasterDAO(db)

	services := &Services{
		Asset:    NewAssetService(assetDAO, permissions, auditService, validationUtil, cacheService, notificationSvc, eventBus),
		Link:     NewLinkService(linkDAO, assetDAO, permissions, auditService, validationUtil, eventBus),
		Taxonomy: NewTaxonomyService(taxonomyDAO, permissions, validationUtil, cacheService),
		Master:   NewMasterService(masterDAO, permissions, validationUtil),
	}

	return services, nil
}
