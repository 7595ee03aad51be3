package blob

type uploadInput struct {
	Bucket  string `path:"bucket"`
	Owner   string `path:"owner"`
	Name    string `path:"name"`
	RawBody []byte `contentType:"application/octet-stream"`
}

type UploadResponse struct {
	Key string `json:"key" doc:"<bucket>/<owner>/<name>"`
}

type uploadOutput struct {
	Body UploadResponse
}

type downloadInput struct {
	Bucket string `path:"bucket"`
	Owner  string `path:"owner"`
	Name   string `path:"name"`
}

type downloadOutput struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}
