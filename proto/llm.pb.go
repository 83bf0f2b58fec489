// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: llm.proto

package llmv1

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

type Sampling struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Temperature      *float64               `protobuf:"fixed64,1,opt,name=temperature,proto3,oneof" json:"temperature,omitempty"`
	MaxTokens        *int32                 `protobuf:"varint,2,opt,name=max_tokens,json=maxTokens,proto3,oneof" json:"max_tokens,omitempty"`
	TopP             *float64               `protobuf:"fixed64,3,opt,name=top_p,json=topP,proto3,oneof" json:"top_p,omitempty"`
	PresencePenalty  *float64               `protobuf:"fixed64,4,opt,name=presence_penalty,json=presencePenalty,proto3,oneof" json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64               `protobuf:"fixed64,5,opt,name=frequency_penalty,json=frequencyPenalty,proto3,oneof" json:"frequency_penalty,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Sampling) Reset() {
	*x = Sampling{}
	mi := &file_llm_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Sampling) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Sampling) ProtoMessage() {}

func (x *Sampling) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Sampling.ProtoReflect.Descriptor instead.
func (*Sampling) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{0}
}

func (x *Sampling) GetTemperature() float64 {
	if x != nil && x.Temperature != nil {
		return *x.Temperature
	}
	return 0
}

func (x *Sampling) GetMaxTokens() int32 {
	if x != nil && x.MaxTokens != nil {
		return *x.MaxTokens
	}
	return 0
}

func (x *Sampling) GetTopP() float64 {
	if x != nil && x.TopP != nil {
		return *x.TopP
	}
	return 0
}

func (x *Sampling) GetPresencePenalty() float64 {
	if x != nil && x.PresencePenalty != nil {
		return *x.PresencePenalty
	}
	return 0
}

func (x *Sampling) GetFrequencyPenalty() float64 {
	if x != nil && x.FrequencyPenalty != nil {
		return *x.FrequencyPenalty
	}
	return 0
}

type CompleteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Model         string                 `protobuf:"bytes,1,opt,name=model,proto3" json:"model,omitempty"`
	System        string                 `protobuf:"bytes,2,opt,name=system,proto3" json:"system,omitempty"`
	User          string                 `protobuf:"bytes,3,opt,name=user,proto3" json:"user,omitempty"`
	Sampling      *Sampling              `protobuf:"bytes,4,opt,name=sampling,proto3" json:"sampling,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteRequest) Reset() {
	*x = CompleteRequest{}
	mi := &file_llm_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteRequest) ProtoMessage() {}

func (x *CompleteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteRequest.ProtoReflect.Descriptor instead.
func (*CompleteRequest) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{1}
}

func (x *CompleteRequest) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *CompleteRequest) GetSystem() string {
	if x != nil {
		return x.System
	}
	return ""
}

func (x *CompleteRequest) GetUser() string {
	if x != nil {
		return x.User
	}
	return ""
}

func (x *CompleteRequest) GetSampling() *Sampling {
	if x != nil {
		return x.Sampling
	}
	return nil
}

type CompleteChunk struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Content:
	//
	//	*CompleteChunk_Text_
	//	*CompleteChunk_Usage_
	//	*CompleteChunk_Error_
	Content       isCompleteChunk_Content `protobuf_oneof:"content"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteChunk) Reset() {
	*x = CompleteChunk{}
	mi := &file_llm_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteChunk) ProtoMessage() {}

func (x *CompleteChunk) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteChunk.ProtoReflect.Descriptor instead.
func (*CompleteChunk) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{2}
}

func (x *CompleteChunk) GetContent() isCompleteChunk_Content {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *CompleteChunk) GetText() *CompleteChunk_Text {
	if x != nil {
		if x, ok := x.Content.(*CompleteChunk_Text_); ok {
			return x.Text
		}
	}
	return nil
}

func (x *CompleteChunk) GetUsage() *CompleteChunk_Usage {
	if x != nil {
		if x, ok := x.Content.(*CompleteChunk_Usage_); ok {
			return x.Usage
		}
	}
	return nil
}

func (x *CompleteChunk) GetError() *CompleteChunk_Error {
	if x != nil {
		if x, ok := x.Content.(*CompleteChunk_Error_); ok {
			return x.Error
		}
	}
	return nil
}

type isCompleteChunk_Content interface {
	isCompleteChunk_Content()
}

type CompleteChunk_Text_ struct {
	Text *CompleteChunk_Text `protobuf:"bytes,1,opt,name=text,proto3,oneof"`
}

type CompleteChunk_Usage_ struct {
	Usage *CompleteChunk_Usage `protobuf:"bytes,2,opt,name=usage,proto3,oneof"`
}

type CompleteChunk_Error_ struct {
	Error *CompleteChunk_Error `protobuf:"bytes,3,opt,name=error,proto3,oneof"`
}

func (*CompleteChunk_Text_) isCompleteChunk_Content() {}

func (*CompleteChunk_Usage_) isCompleteChunk_Content() {}

func (*CompleteChunk_Error_) isCompleteChunk_Content() {}

type CompleteChunk_Text struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteChunk_Text) Reset() {
	*x = CompleteChunk_Text{}
	mi := &file_llm_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteChunk_Text) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteChunk_Text) ProtoMessage() {}

func (x *CompleteChunk_Text) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteChunk_Text.ProtoReflect.Descriptor instead.
func (*CompleteChunk_Text) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{2, 0}
}

func (x *CompleteChunk_Text) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type CompleteChunk_Usage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TotalTokens   int32                  `protobuf:"varint,1,opt,name=total_tokens,json=totalTokens,proto3" json:"total_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteChunk_Usage) Reset() {
	*x = CompleteChunk_Usage{}
	mi := &file_llm_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteChunk_Usage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteChunk_Usage) ProtoMessage() {}

func (x *CompleteChunk_Usage) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteChunk_Usage.ProtoReflect.Descriptor instead.
func (*CompleteChunk_Usage) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{2, 1}
}

func (x *CompleteChunk_Usage) GetTotalTokens() int32 {
	if x != nil {
		return x.TotalTokens
	}
	return 0
}

type CompleteChunk_Error struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Retryable     bool                   `protobuf:"varint,2,opt,name=retryable,proto3" json:"retryable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteChunk_Error) Reset() {
	*x = CompleteChunk_Error{}
	mi := &file_llm_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteChunk_Error) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteChunk_Error) ProtoMessage() {}

func (x *CompleteChunk_Error) ProtoReflect() protoreflect.Message {
	mi := &file_llm_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteChunk_Error.ProtoReflect.Descriptor instead.
func (*CompleteChunk_Error) Descriptor() ([]byte, []int) {
	return file_llm_proto_rawDescGZIP(), []int{2, 2}
}

func (x *CompleteChunk_Error) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *CompleteChunk_Error) GetRetryable() bool {
	if x != nil {
		return x.Retryable
	}
	return false
}

var File_llm_proto protoreflect.FileDescriptor

const file_llm_proto_rawDesc = "" +
	"\n" +
	"\tllm.proto\x12\x06llm.v1\"\xa5\x02\n" +
	"\bSampling\x12%\n" +
	"\vtemperature\x18\x01 \x01(\x01H\x00R\vtemperature\x88\x01\x01\x12\"\n" +
	"\n" +
	"max_tokens\x18\x02 \x01(\x05H\x01R\tmaxTokens\x88\x01\x01\x12\x18\n" +
	"\x05top_p\x18\x03 \x01(\x01H\x02R\x04topP\x88\x01\x01\x12.\n" +
	"\x10presence_penalty\x18\x04 \x01(\x01H\x03R\x0fpresencePenalty\x88\x01\x01\x120\n" +
	"\x11frequency_penalty\x18\x05 \x01(\x01H\x04R\x10frequencyPenalty\x88\x01\x01B\x0e\n" +
	"\f_temperatureB\r\n" +
	"\v_max_tokensB\b\n" +
	"\x06_top_pB\x13\n" +
	"\x11_presence_penaltyB\x14\n" +
	"\x12_frequency_penalty\"\x81\x01\n" +
	"\x0fCompleteRequest\x12\x14\n" +
	"\x05model\x18\x01 \x01(\tR\x05model\x12\x16\n" +
	"\x06system\x18\x02 \x01(\tR\x06system\x12\x12\n" +
	"\x04user\x18\x03 \x01(\tR\x04user\x12,\n" +
	"\bsampling\x18\x04 \x01(\v2\x10.llm.v1.SamplingR\bsampling\"\xc5\x02\n" +
	"\rCompleteChunk\x120\n" +
	"\x04text\x18\x01 \x01(\v2\x1a.llm.v1.CompleteChunk.TextH\x00R\x04text\x123\n" +
	"\x05usage\x18\x02 \x01(\v2\x1b.llm.v1.CompleteChunk.UsageH\x00R\x05usage\x123\n" +
	"\x05error\x18\x03 \x01(\v2\x1b.llm.v1.CompleteChunk.ErrorH\x00R\x05error\x1a \n" +
	"\x04Text\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\x1a*\n" +
	"\x05Usage\x12!\n" +
	"\ftotal_tokens\x18\x01 \x01(\x05R\vtotalTokens\x1a?\n" +
	"\x05Error\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\x12\x1c\n" +
	"\tretryable\x18\x02 \x01(\bR\tretryableB\t\n" +
	"\acontent2J\n" +
	"\n" +
	"LLMService\x12<\n" +
	"\bComplete\x12\x17.llm.v1.CompleteRequest\x1a\x15.llm.v1.CompleteChunk0\x01B(Z&github.com/plenumhq/plenum/proto;llmv1b\x06proto3"

var (
	file_llm_proto_rawDescOnce sync.Once
	file_llm_proto_rawDescData []byte
)

func file_llm_proto_rawDescGZIP() []byte {
	file_llm_proto_rawDescOnce.Do(func() {
		file_llm_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_llm_proto_rawDesc), len(file_llm_proto_rawDesc)))
	})
	return file_llm_proto_rawDescData
}

var file_llm_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_llm_proto_goTypes = []any{
	(*Sampling)(nil),            // 0: llm.v1.Sampling
	(*CompleteRequest)(nil),     // 1: llm.v1.CompleteRequest
	(*CompleteChunk)(nil),       // 2: llm.v1.CompleteChunk
	(*CompleteChunk_Text)(nil),  // 3: llm.v1.CompleteChunk.Text
	(*CompleteChunk_Usage)(nil), // 4: llm.v1.CompleteChunk.Usage
	(*CompleteChunk_Error)(nil), // 5: llm.v1.CompleteChunk.Error
}
var file_llm_proto_depIdxs = []int32{
	0, // 0: llm.v1.CompleteRequest.sampling:type_name -> llm.v1.Sampling
	3, // 1: llm.v1.CompleteChunk.text:type_name -> llm.v1.CompleteChunk.Text
	4, // 2: llm.v1.CompleteChunk.usage:type_name -> llm.v1.CompleteChunk.Usage
	5, // 3: llm.v1.CompleteChunk.error:type_name -> llm.v1.CompleteChunk.Error
	1, // 4: llm.v1.LLMService.Complete:input_type -> llm.v1.CompleteRequest
	2, // 5: llm.v1.LLMService.Complete:output_type -> llm.v1.CompleteChunk
	5, // [5:6] is the sub-list for method output_type
	4, // [4:5] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_llm_proto_init() }
func file_llm_proto_init() {
	if File_llm_proto != nil {
		return
	}
	file_llm_proto_msgTypes[0].OneofWrappers = []any{}
	file_llm_proto_msgTypes[2].OneofWrappers = []any{
		(*CompleteChunk_Text_)(nil),
		(*CompleteChunk_Usage_)(nil),
		(*CompleteChunk_Error_)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_llm_proto_rawDesc), len(file_llm_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_llm_proto_goTypes,
		DependencyIndexes: file_llm_proto_depIdxs,
		MessageInfos:      file_llm_proto_msgTypes,
	}.Build()
	File_llm_proto = out.File
	file_llm_proto_goTypes = nil
	file_llm_proto_depIdxs = nil
}
