package hub

type ApplyUploadUrlReq struct {
	FileName string `protobuf:"bytes,1,opt,name=fileName,proto3" form:"fileName" json:"fileName" query:"fileName" vd:"len($)>0"`
}

type ApplyUploadUrlResp struct {
	UploadUrl string `protobuf:"bytes,1,opt,name=uploadUrl,proto3" form:"uploadUrl" json:"uploadUrl" query:"uploadUrl"`
	FileUrl   string `protobuf:"bytes,2,opt,name=fileUrl,proto3" form:"fileUrl" json:"fileUrl" query:"fileUrl"`
	FileName  string `protobuf:"bytes,3,opt,name=fileName,proto3" form:"fileName" json:"fileName" query:"fileName"`
}
