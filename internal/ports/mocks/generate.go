//go:generate mockgen -source=../order_reader.go      -destination=./mock_order_reader.go      -package=mocks
//go:generate mockgen -source=../catalog_reader.go    -destination=./mock_catalog_reader.go    -package=mocks
//go:generate mockgen -source=../status_vocabulary.go -destination=./mock_status_vocabulary.go -package=mocks
//go:generate mockgen -source=../token_manager.go     -destination=./mock_token_manager.go     -package=mocks
//go:generate mockgen -source=../logger.go            -destination=./mock_logger.go            -package=mocks
//go:generate mockgen -source=../sales_services.go    -destination=./mock_sales_services.go    -package=mocks

package mocks
