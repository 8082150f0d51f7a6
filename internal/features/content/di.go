package content

var socialContentRepository = &SocialContentRepository{}
var generatedImageRepository = &GeneratedImageRepository{}
var contentService = &ContentService{
	socialContentRepository,
	generatedImageRepository,
}
var contentController = &ContentController{contentService}

func GetContentController() *ContentController {
	return contentController
}

func GetContentService() *ContentService {
	return contentService
}
