// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: roleadapter.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExecuteRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	RunId    string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	StepId   int32                  `protobuf:"varint,2,opt,name=step_id,json=stepId,proto3" json:"step_id,omitempty"`
	Role     string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	Question string                 `protobuf:"bytes,4,opt,name=question,proto3" json:"question,omitempty"`
	// Outputs of completed predecessor steps, in plan order.
	Context       []string `protobuf:"bytes,5,rep,name=context,proto3" json:"context,omitempty"`
	Seed          int64    `protobuf:"varint,6,opt,name=seed,proto3" json:"seed,omitempty"`
	Temperature   float64  `protobuf:"fixed64,7,opt,name=temperature,proto3" json:"temperature,omitempty"`
	MaxTokens     int32    `protobuf:"varint,8,opt,name=max_tokens,json=maxTokens,proto3" json:"max_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteRequest) Reset() {
	*x = ExecuteRequest{}
	mi := &file_roleadapter_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteRequest) ProtoMessage() {}

func (x *ExecuteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roleadapter_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteRequest.ProtoReflect.Descriptor instead.
func (*ExecuteRequest) Descriptor() ([]byte, []int) {
	return file_roleadapter_proto_rawDescGZIP(), []int{0}
}

func (x *ExecuteRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ExecuteRequest) GetStepId() int32 {
	if x != nil {
		return x.StepId
	}
	return 0
}

func (x *ExecuteRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ExecuteRequest) GetQuestion() string {
	if x != nil {
		return x.Question
	}
	return ""
}

func (x *ExecuteRequest) GetContext() []string {
	if x != nil {
		return x.Context
	}
	return nil
}

func (x *ExecuteRequest) GetSeed() int64 {
	if x != nil {
		return x.Seed
	}
	return 0
}

func (x *ExecuteRequest) GetTemperature() float64 {
	if x != nil {
		return x.Temperature
	}
	return 0
}

func (x *ExecuteRequest) GetMaxTokens() int32 {
	if x != nil {
		return x.MaxTokens
	}
	return 0
}

type ExecuteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	TokensUsed    int32                  `protobuf:"varint,2,opt,name=tokens_used,json=tokensUsed,proto3" json:"tokens_used,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Meta          map[string]string      `protobuf:"bytes,4,rep,name=meta,proto3" json:"meta,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteResponse) Reset() {
	*x = ExecuteResponse{}
	mi := &file_roleadapter_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteResponse) ProtoMessage() {}

func (x *ExecuteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roleadapter_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteResponse.ProtoReflect.Descriptor instead.
func (*ExecuteResponse) Descriptor() ([]byte, []int) {
	return file_roleadapter_proto_rawDescGZIP(), []int{1}
}

func (x *ExecuteResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ExecuteResponse) GetTokensUsed() int32 {
	if x != nil {
		return x.TokensUsed
	}
	return 0
}

func (x *ExecuteResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExecuteResponse) GetMeta() map[string]string {
	if x != nil {
		return x.Meta
	}
	return nil
}

var File_roleadapter_proto protoreflect.FileDescriptor

const file_roleadapter_proto_rawDesc = "" +
	"\n" +
	"\x11roleadapter.proto\x12\x0eorchid.role.v1\"\xdf\x01\n" +
	"\x0eExecuteRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x17\n" +
	"\astep_id\x18\x02 \x01(\x05R\x06stepId\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\x12\x1a\n" +
	"\bquestion\x18\x04 \x01(\tR\bquestion\x12\x18\n" +
	"\acontext\x18\x05 \x03(\tR\acontext\x12\x12\n" +
	"\x04seed\x18\x06 \x01(\x03R\x04seed\x12 \n" +
	"\vtemperature\x18\a \x01(\x01R\vtemperature\x12\x1d\n" +
	"\n" +
	"max_tokens\x18\b \x01(\x05R\tmaxTokens\"\xde\x01\n" +
	"\x0fExecuteResponse\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1f\n" +
	"\vtokens_used\x18\x02 \x01(\x05R\n" +
	"tokensUsed\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12=\n" +
	"\x04meta\x18\x04 \x03(\v2).orchid.role.v1.ExecuteResponse.MetaEntryR\x04meta\x1a7\n" +
	"\tMetaEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x012`\n" +
	"\x12RoleAdapterService\x12J\n" +
	"\aExecute\x12\x1e.orchid.role.v1.ExecuteRequest\x1a\x1f.orchid.role.v1.ExecuteResponseB*Z(github.com/orchid-run/orchid/proto;protob\x06proto3"

var (
	file_roleadapter_proto_rawDescOnce sync.Once
	file_roleadapter_proto_rawDescData []byte
)

func file_roleadapter_proto_rawDescGZIP() []byte {
	file_roleadapter_proto_rawDescOnce.Do(func() {
		file_roleadapter_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_roleadapter_proto_rawDesc), len(file_roleadapter_proto_rawDesc)))
	})
	return file_roleadapter_proto_rawDescData
}

var file_roleadapter_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_roleadapter_proto_goTypes = []any{
	(*ExecuteRequest)(nil),  // 0: orchid.role.v1.ExecuteRequest
	(*ExecuteResponse)(nil), // 1: orchid.role.v1.ExecuteResponse
	nil,                     // 2: orchid.role.v1.ExecuteResponse.MetaEntry
}
var file_roleadapter_proto_depIdxs = []int32{
	2, // 0: orchid.role.v1.ExecuteResponse.meta:type_name -> orchid.role.v1.ExecuteResponse.MetaEntry
	0, // 1: orchid.role.v1.RoleAdapterService.Execute:input_type -> orchid.role.v1.ExecuteRequest
	1, // 2: orchid.role.v1.RoleAdapterService.Execute:output_type -> orchid.role.v1.ExecuteResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_roleadapter_proto_init() }
func file_roleadapter_proto_init() {
	if File_roleadapter_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_roleadapter_proto_rawDesc), len(file_roleadapter_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_roleadapter_proto_goTypes,
		DependencyIndexes: file_roleadapter_proto_depIdxs,
		MessageInfos:      file_roleadapter_proto_msgTypes,
	}.Build()
	File_roleadapter_proto = out.File
	file_roleadapter_proto_goTypes = nil
	file_roleadapter_proto_depIdxs = nil
}
