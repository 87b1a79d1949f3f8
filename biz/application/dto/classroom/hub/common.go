package hub

type Response struct {
	Code int64  `protobuf:"varint,1,opt,name=code,proto3" form:"code" json:"code" query:"code"`
	Msg  string `protobuf:"bytes,2,opt,name=msg,proto3" form:"msg" json:"msg" query:"msg"`
}

type FileInfo struct {
	FileUrl     string `protobuf:"bytes,1,opt,name=fileUrl,proto3" form:"fileUrl" json:"fileUrl" query:"fileUrl"`
	FileName    string `protobuf:"bytes,2,opt,name=fileName,proto3" form:"fileName" json:"fileName" query:"fileName"`
	Description string `protobuf:"bytes,3,opt,name=description,proto3" form:"description" json:"description" query:"description"`
	UploadTime  int64  `protobuf:"varint,4,opt,name=uploadTime,proto3" form:"uploadTime" json:"uploadTime" query:"uploadTime"`
}
