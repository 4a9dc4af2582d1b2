// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: runner/v1/runner.proto

package runnerv1

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

type ExecuteStepRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	StepId         string                 `protobuf:"bytes,1,opt,name=step_id,json=stepId,proto3" json:"step_id,omitempty"`
	SessionId      string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Prompt         string                 `protobuf:"bytes,3,opt,name=prompt,proto3" json:"prompt,omitempty"`
	TimeoutSeconds int64                  `protobuf:"varint,4,opt,name=timeout_seconds,json=timeoutSeconds,proto3" json:"timeout_seconds,omitempty"`
	// Free-form dispatch hints (provider, model and similar).
	Metadata      map[string]string `protobuf:"bytes,5,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteStepRequest) Reset() {
	*x = ExecuteStepRequest{}
	mi := &file_runner_v1_runner_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteStepRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteStepRequest) ProtoMessage() {}

func (x *ExecuteStepRequest) ProtoReflect() protoreflect.Message {
	mi := &file_runner_v1_runner_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteStepRequest.ProtoReflect.Descriptor instead.
func (*ExecuteStepRequest) Descriptor() ([]byte, []int) {
	return file_runner_v1_runner_proto_rawDescGZIP(), []int{0}
}

func (x *ExecuteStepRequest) GetStepId() string {
	if x != nil {
		return x.StepId
	}
	return ""
}

func (x *ExecuteStepRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ExecuteStepRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *ExecuteStepRequest) GetTimeoutSeconds() int64 {
	if x != nil {
		return x.TimeoutSeconds
	}
	return 0
}

func (x *ExecuteStepRequest) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type ExecuteStepChunk struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Chunk:
	//
	//	*ExecuteStepChunk_Text
	//	*ExecuteStepChunk_Status
	Chunk         isExecuteStepChunk_Chunk `protobuf_oneof:"chunk"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExecuteStepChunk) Reset() {
	*x = ExecuteStepChunk{}
	mi := &file_runner_v1_runner_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteStepChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteStepChunk) ProtoMessage() {}

func (x *ExecuteStepChunk) ProtoReflect() protoreflect.Message {
	mi := &file_runner_v1_runner_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteStepChunk.ProtoReflect.Descriptor instead.
func (*ExecuteStepChunk) Descriptor() ([]byte, []int) {
	return file_runner_v1_runner_proto_rawDescGZIP(), []int{1}
}

func (x *ExecuteStepChunk) GetChunk() isExecuteStepChunk_Chunk {
	if x != nil {
		return x.Chunk
	}
	return nil
}

func (x *ExecuteStepChunk) GetText() *TextChunk {
	if x != nil {
		if x, ok := x.Chunk.(*ExecuteStepChunk_Text); ok {
			return x.Text
		}
	}
	return nil
}

func (x *ExecuteStepChunk) GetStatus() *StatusChunk {
	if x != nil {
		if x, ok := x.Chunk.(*ExecuteStepChunk_Status); ok {
			return x.Status
		}
	}
	return nil
}

type isExecuteStepChunk_Chunk interface {
	isExecuteStepChunk_Chunk()
}

type ExecuteStepChunk_Text struct {
	Text *TextChunk `protobuf:"bytes,1,opt,name=text,proto3,oneof"`
}

type ExecuteStepChunk_Status struct {
	Status *StatusChunk `protobuf:"bytes,2,opt,name=status,proto3,oneof"`
}

func (*ExecuteStepChunk_Text) isExecuteStepChunk_Chunk() {}

func (*ExecuteStepChunk_Status) isExecuteStepChunk_Chunk() {}

// TextChunk carries a fragment of the agent's output.
type TextChunk struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       string                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TextChunk) Reset() {
	*x = TextChunk{}
	mi := &file_runner_v1_runner_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TextChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TextChunk) ProtoMessage() {}

func (x *TextChunk) ProtoReflect() protoreflect.Message {
	mi := &file_runner_v1_runner_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TextChunk.ProtoReflect.Descriptor instead.
func (*TextChunk) Descriptor() ([]byte, []int) {
	return file_runner_v1_runner_proto_rawDescGZIP(), []int{2}
}

func (x *TextChunk) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

// StatusChunk terminates the stream.
type StatusChunk struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// "ok" or "error".
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Error         string `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusChunk) Reset() {
	*x = StatusChunk{}
	mi := &file_runner_v1_runner_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusChunk) ProtoMessage() {}

func (x *StatusChunk) ProtoReflect() protoreflect.Message {
	mi := &file_runner_v1_runner_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusChunk.ProtoReflect.Descriptor instead.
func (*StatusChunk) Descriptor() ([]byte, []int) {
	return file_runner_v1_runner_proto_rawDescGZIP(), []int{3}
}

func (x *StatusChunk) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *StatusChunk) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

var File_runner_v1_runner_proto protoreflect.FileDescriptor

const file_runner_v1_runner_proto_rawDesc = "" +
	"\n" +
	"\x16runner/v1/runner.proto\x12\x13agentloop.runner.v1\"\x9d\x02\n" +
	"\x12ExecuteStepRequest\x12\x17\n" +
	"\astep_id\x18\x01 \x01(\tR\x06stepId\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\x12\x16\n" +
	"\x06prompt\x18\x03 \x01(\tR\x06prompt\x12'\n" +
	"\x0ftimeout_seconds\x18\x04 \x01(\x03R\x0etimeoutSeconds\x12Q\n" +
	"\bmetadata\x18\x05 \x03(\v25.agentloop.runner.v1.ExecuteStepRequest.MetadataEntryR\bmetadata\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x8d\x01\n" +
	"\x10ExecuteStepChunk\x124\n" +
	"\x04text\x18\x01 \x01(\v2\x1e.agentloop.runner.v1.TextChunkH\x00R\x04text\x12:\n" +
	"\x06status\x18\x02 \x01(\v2 .agentloop.runner.v1.StatusChunkH\x00R\x06statusB\a\n" +
	"\x05chunk\"%\n" +
	"\tTextChunk\x12\x18\n" +
	"\acontent\x18\x01 \x01(\tR\acontent\";\n" +
	"\vStatusChunk\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05error\x18\x02 \x01(\tR\x05error2p\n" +
	"\rRunnerService\x12_\n" +
	"\vExecuteStep\x12'.agentloop.runner.v1.ExecuteStepRequest\x1a%.agentloop.runner.v1.ExecuteStepChunk0\x01BCZAgithub.com/codeready-toolchain/agentloop/proto/runner/v1;runnerv1b\x06proto3"

var (
	file_runner_v1_runner_proto_rawDescOnce sync.Once
	file_runner_v1_runner_proto_rawDescData []byte
)

func file_runner_v1_runner_proto_rawDescGZIP() []byte {
	file_runner_v1_runner_proto_rawDescOnce.Do(func() {
		file_runner_v1_runner_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_runner_v1_runner_proto_rawDesc), len(file_runner_v1_runner_proto_rawDesc)))
	})
	return file_runner_v1_runner_proto_rawDescData
}

var file_runner_v1_runner_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_runner_v1_runner_proto_goTypes = []any{
	(*ExecuteStepRequest)(nil), // 0: agentloop.runner.v1.ExecuteStepRequest
	(*ExecuteStepChunk)(nil),   // 1: agentloop.runner.v1.ExecuteStepChunk
	(*TextChunk)(nil),          // 2: agentloop.runner.v1.TextChunk
	(*StatusChunk)(nil),        // 3: agentloop.runner.v1.StatusChunk
	nil,                        // 4: agentloop.runner.v1.ExecuteStepRequest.MetadataEntry
}
var file_runner_v1_runner_proto_depIdxs = []int32{
	4, // 0: agentloop.runner.v1.ExecuteStepRequest.metadata:type_name -> agentloop.runner.v1.ExecuteStepRequest.MetadataEntry
	2, // 1: agentloop.runner.v1.ExecuteStepChunk.text:type_name -> agentloop.runner.v1.TextChunk
	3, // 2: agentloop.runner.v1.ExecuteStepChunk.status:type_name -> agentloop.runner.v1.StatusChunk
	0, // 3: agentloop.runner.v1.RunnerService.ExecuteStep:input_type -> agentloop.runner.v1.ExecuteStepRequest
	1, // 4: agentloop.runner.v1.RunnerService.ExecuteStep:output_type -> agentloop.runner.v1.ExecuteStepChunk
	4, // [4:5] is the sub-list for method output_type
	3, // [3:4] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_runner_v1_runner_proto_init() }
func file_runner_v1_runner_proto_init() {
	if File_runner_v1_runner_proto != nil {
		return
	}
	file_runner_v1_runner_proto_msgTypes[1].OneofWrappers = []any{
		(*ExecuteStepChunk_Text)(nil),
		(*ExecuteStepChunk_Status)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_runner_v1_runner_proto_rawDesc), len(file_runner_v1_runner_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_runner_v1_runner_proto_goTypes,
		DependencyIndexes: file_runner_v1_runner_proto_depIdxs,
		MessageInfos:      file_runner_v1_runner_proto_msgTypes,
	}.Build()
	File_runner_v1_runner_proto = out.File
	file_runner_v1_runner_proto_goTypes = nil
	file_runner_v1_runner_proto_depIdxs = nil
}
