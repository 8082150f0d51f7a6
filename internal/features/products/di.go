package products

var productRepository = &ProductRepository{}
var productService = &ProductService{productRepository}
var productController = &ProductController{productService}

func GetProductController() *ProductController {
	return productController
}

func GetProductService() *ProductService {
	return productService
}
