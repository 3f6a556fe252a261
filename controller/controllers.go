// controller/controllers.go
package controller

import "github.com/SAHAYOGESHWARAN/guries-sub010/service"

type Controllers struct {
	Asset   *AssetController
	Link    *LinkController
	Service *ServiceController
	Master  *MasterController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Asset:   NewAssetController(services.Asset),
		Link:    NewLinkController(services.Link),
		Service: NewServiceController(services.Taxonomy, services.Link),
		Master:  NewMasterController(services.Master),
	}
}
