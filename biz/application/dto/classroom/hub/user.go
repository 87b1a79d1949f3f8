package hub

import "classroom-hub/biz/application/dto/basic"

type SignInReq struct {
	Email    string `protobuf:"bytes,1,opt,name=email,proto3" form:"email" json:"email" query:"email" vd:"email($)"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" form:"password" json:"password" query:"password" vd:"len($)>0"`
}

type SignInResp struct {
	Id           string `protobuf:"bytes,1,opt,name=id,proto3" form:"id" json:"id" query:"id"`
	AccessToken  string `protobuf:"bytes,2,opt,name=accessToken,proto3" form:"accessToken" json:"accessToken" query:"accessToken"`
	AccessExpire int64  `protobuf:"varint,3,opt,name=accessExpire,proto3" form:"accessExpire" json:"accessExpire" query:"accessExpire"`
	Name         string `protobuf:"bytes,4,opt,name=name,proto3" form:"name" json:"name" query:"name"`
	Role         string `protobuf:"bytes,5,opt,name=role,proto3" form:"role" json:"role" query:"role"`
}

type SignUpReq struct {
	Email    string `protobuf:"bytes,1,opt,name=email,proto3" form:"email" json:"email" query:"email" vd:"email($)"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" form:"password" json:"password" query:"password" vd:"len($)>5"`
	FullName string `protobuf:"bytes,3,opt,name=fullName,proto3" form:"fullName" json:"fullName" query:"fullName"`
}

type UserInfo struct {
	Id         string `protobuf:"bytes,1,opt,name=id,proto3" form:"id" json:"id" query:"id"`
	Email      string `protobuf:"bytes,2,opt,name=email,proto3" form:"email" json:"email" query:"email"`
	Username   string `protobuf:"bytes,3,opt,name=username,proto3" form:"username" json:"username" query:"username"`
	Role       string `protobuf:"bytes,4,opt,name=role,proto3" form:"role" json:"role" query:"role"`
	Disabled   bool   `protobuf:"varint,5,opt,name=disabled,proto3" form:"disabled" json:"disabled" query:"disabled"`
	CreateTime int64  `protobuf:"varint,6,opt,name=createTime,proto3" form:"createTime" json:"createTime" query:"createTime"`
}

type GetUserInfoReq struct {
}

type GetUserInfoResp struct {
	User *UserInfo `protobuf:"bytes,1,opt,name=user,proto3" form:"user" json:"user" query:"user"`
}

type UpdateUserInfoReq struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" form:"username" json:"username" query:"username" vd:"len($)>0"`
}

type ListStudentsReq struct {
}

type ListUsersReq struct {
	PaginationOptions *basic.PaginationOptions `protobuf:"bytes,1,opt,name=paginationOptions,proto3" form:"paginationOptions" json:"paginationOptions" query:"paginationOptions"`
}

type ListUsersResp struct {
	Users []*UserInfo `protobuf:"bytes,1,rep,name=users,proto3" form:"users" json:"users" query:"users"`
	Total int64       `protobuf:"varint,2,opt,name=total,proto3" form:"total" json:"total" query:"total"`
}

type UpdateUserRoleReq struct {
	UserId string `protobuf:"bytes,1,opt,name=userId,proto3" form:"userId" json:"userId" query:"userId" vd:"len($)>0"`
	Role   string `protobuf:"bytes,2,opt,name=role,proto3" form:"role" json:"role" query:"role" vd:"$=='admin'||$=='teacher'||$=='student'"`
}

type SetUserDisabledReq struct {
	UserId   string `protobuf:"bytes,1,opt,name=userId,proto3" form:"userId" json:"userId" query:"userId" vd:"len($)>0"`
	Disabled bool   `protobuf:"varint,2,opt,name=disabled,proto3" form:"disabled" json:"disabled" query:"disabled"`
}
