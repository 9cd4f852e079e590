// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: docflow/v1/docflow.proto

package docflowpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	DocflowService_ListDocuments_FullMethodName      = "/docflow.v1.DocflowService/ListDocuments"
	DocflowService_GetDocument_FullMethodName        = "/docflow.v1.DocflowService/GetDocument"
	DocflowService_ListEscalations_FullMethodName    = "/docflow.v1.DocflowService/ListEscalations"
	DocflowService_ResolveEscalations_FullMethodName = "/docflow.v1.DocflowService/ResolveEscalations"
	DocflowService_ExportLedger_FullMethodName       = "/docflow.v1.DocflowService/ExportLedger"
	DocflowService_ImportLedger_FullMethodName       = "/docflow.v1.DocflowService/ImportLedger"
	DocflowService_BuildInvoices_FullMethodName      = "/docflow.v1.DocflowService/BuildInvoices"
	DocflowService_ListSubmissions_FullMethodName    = "/docflow.v1.DocflowService/ListSubmissions"
	DocflowService_SubmitDocument_FullMethodName     = "/docflow.v1.DocflowService/SubmitDocument"
	DocflowService_CancelDocument_FullMethodName     = "/docflow.v1.DocflowService/CancelDocument"
)

// DocflowServiceClient is the client API for DocflowService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DocflowServiceClient interface {
	// Documents
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	// Escalation ledger
	ListEscalations(ctx context.Context, in *ListEscalationsRequest, opts ...grpc.CallOption) (*ListEscalationsResponse, error)
	ResolveEscalations(ctx context.Context, in *ResolveEscalationsRequest, opts ...grpc.CallOption) (*ResolveEscalationsResponse, error)
	ExportLedger(ctx context.Context, in *ExportLedgerRequest, opts ...grpc.CallOption) (*ExportLedgerResponse, error)
	ImportLedger(ctx context.Context, in *ImportLedgerRequest, opts ...grpc.CallOption) (*ImportLedgerResponse, error)
	// Submission lifecycle
	BuildInvoices(ctx context.Context, in *BuildInvoicesRequest, opts ...grpc.CallOption) (*BuildInvoicesResponse, error)
	ListSubmissions(ctx context.Context, in *ListSubmissionsRequest, opts ...grpc.CallOption) (*ListSubmissionsResponse, error)
	SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error)
	CancelDocument(ctx context.Context, in *CancelDocumentRequest, opts ...grpc.CallOption) (*CancelDocumentResponse, error)
}

type docflowServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocflowServiceClient(cc grpc.ClientConnInterface) DocflowServiceClient {
	return &docflowServiceClient{cc}
}

func (c *docflowServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, DocflowService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docflowServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, DocflowService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docflowServiceClient) ListEscalations(ctx context.Context, in *ListEscalationsRequest, opts ...grpc.CallOption) (*ListEscalationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEscalationsResponse)
	err := c.cc.Invoke(ctx, DocflowService_ListEscalations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docflowServiceClient) ResolveEscalations(ctx context.Context, in *ResolveEscalationsRequest, opts ...grpc.CallOption) (*ResolveEscalationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveEscalationsResponse)
	err := c.cc.Invoke(ctx, DocflowService_ResolveEscalations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docflowServiceClient) ExportLedger(ctx context.Context, in *ExportLedgerRequest, opts ...grpc.CallOption) (*ExportLedgerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportLedgerResponse)
	err := c.cc.Invoke(ctx, DocflowService_ExportLedger_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docflowServiceClient) ImportLedger(ctx context.Context, in *ImportLedgerRequest, opts ...grpc.CallOption) (*ImportLedgerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportLedgerResponse)
	err := c.cc.Invoke(ctx, DocflowService_ImportLedger_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docflowServiceClient) BuildInvoices(ctx context.Context, in *BuildInvoicesRequest, opts ...grpc.CallOption) (*BuildInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BuildInvoicesResponse)
	err := c.cc.Invoke(ctx, DocflowService_BuildInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docflowServiceClient) ListSubmissions(ctx context.Context, in *ListSubmissionsRequest, opts ...grpc.CallOption) (*ListSubmissionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSubmissionsResponse)
	err := c.cc.Invoke(ctx, DocflowService_ListSubmissions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docflowServiceClient) SubmitDocument(ctx context.Context, in *SubmitDocumentRequest, opts ...grpc.CallOption) (*SubmitDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDocumentResponse)
	err := c.cc.Invoke(ctx, DocflowService_SubmitDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *docflowServiceClient) CancelDocument(ctx context.Context, in *CancelDocumentRequest, opts ...grpc.CallOption) (*CancelDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelDocumentResponse)
	err := c.cc.Invoke(ctx, DocflowService_CancelDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocflowServiceServer is the server API for DocflowService service.
// All implementations must embed UnimplementedDocflowServiceServer
// for forward compatibility.
type DocflowServiceServer interface {
	// Documents
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	// Escalation ledger
	ListEscalations(context.Context, *ListEscalationsRequest) (*ListEscalationsResponse, error)
	ResolveEscalations(context.Context, *ResolveEscalationsRequest) (*ResolveEscalationsResponse, error)
	ExportLedger(context.Context, *ExportLedgerRequest) (*ExportLedgerResponse, error)
	ImportLedger(context.Context, *ImportLedgerRequest) (*ImportLedgerResponse, error)
	// Submission lifecycle
	BuildInvoices(context.Context, *BuildInvoicesRequest) (*BuildInvoicesResponse, error)
	ListSubmissions(context.Context, *ListSubmissionsRequest) (*ListSubmissionsResponse, error)
	SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error)
	CancelDocument(context.Context, *CancelDocumentRequest) (*CancelDocumentResponse, error)
	mustEmbedUnimplementedDocflowServiceServer()
}

// UnimplementedDocflowServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocflowServiceServer struct{}

func (UnimplementedDocflowServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedDocflowServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedDocflowServiceServer) ListEscalations(context.Context, *ListEscalationsRequest) (*ListEscalationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEscalations not implemented")
}
func (UnimplementedDocflowServiceServer) ResolveEscalations(context.Context, *ResolveEscalationsRequest) (*ResolveEscalationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveEscalations not implemented")
}
func (UnimplementedDocflowServiceServer) ExportLedger(context.Context, *ExportLedgerRequest) (*ExportLedgerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportLedger not implemented")
}
func (UnimplementedDocflowServiceServer) ImportLedger(context.Context, *ImportLedgerRequest) (*ImportLedgerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportLedger not implemented")
}
func (UnimplementedDocflowServiceServer) BuildInvoices(context.Context, *BuildInvoicesRequest) (*BuildInvoicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BuildInvoices not implemented")
}
func (UnimplementedDocflowServiceServer) ListSubmissions(context.Context, *ListSubmissionsRequest) (*ListSubmissionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSubmissions not implemented")
}
func (UnimplementedDocflowServiceServer) SubmitDocument(context.Context, *SubmitDocumentRequest) (*SubmitDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDocument not implemented")
}
func (UnimplementedDocflowServiceServer) CancelDocument(context.Context, *CancelDocumentRequest) (*CancelDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelDocument not implemented")
}
func (UnimplementedDocflowServiceServer) mustEmbedUnimplementedDocflowServiceServer() {}
func (UnimplementedDocflowServiceServer) testEmbeddedByValue()                        {}

// UnsafeDocflowServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocflowServiceServer will
// result in compilation errors.
type UnsafeDocflowServiceServer interface {
	mustEmbedUnimplementedDocflowServiceServer()
}

func RegisterDocflowServiceServer(s grpc.ServiceRegistrar, srv DocflowServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocflowServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocflowService_ServiceDesc, srv)
}

func _DocflowService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocflowServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocflowService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocflowServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocflowService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocflowServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocflowService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocflowServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocflowService_ListEscalations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEscalationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocflowServiceServer).ListEscalations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocflowService_ListEscalations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocflowServiceServer).ListEscalations(ctx, req.(*ListEscalationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocflowService_ResolveEscalations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveEscalationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocflowServiceServer).ResolveEscalations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocflowService_ResolveEscalations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocflowServiceServer).ResolveEscalations(ctx, req.(*ResolveEscalationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocflowService_ExportLedger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocflowServiceServer).ExportLedger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocflowService_ExportLedger_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocflowServiceServer).ExportLedger(ctx, req.(*ExportLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocflowService_ImportLedger_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportLedgerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocflowServiceServer).ImportLedger(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocflowService_ImportLedger_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocflowServiceServer).ImportLedger(ctx, req.(*ImportLedgerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocflowService_BuildInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BuildInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocflowServiceServer).BuildInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocflowService_BuildInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocflowServiceServer).BuildInvoices(ctx, req.(*BuildInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocflowService_ListSubmissions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSubmissionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocflowServiceServer).ListSubmissions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocflowService_ListSubmissions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocflowServiceServer).ListSubmissions(ctx, req.(*ListSubmissionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocflowService_SubmitDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocflowServiceServer).SubmitDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocflowService_SubmitDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocflowServiceServer).SubmitDocument(ctx, req.(*SubmitDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocflowService_CancelDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocflowServiceServer).CancelDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocflowService_CancelDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocflowServiceServer).CancelDocument(ctx, req.(*CancelDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocflowService_ServiceDesc is the grpc.ServiceDesc for DocflowService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocflowService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docflow.v1.DocflowService",
	HandlerType: (*DocflowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListDocuments",
			Handler:    _DocflowService_ListDocuments_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _DocflowService_GetDocument_Handler,
		},
		{
			MethodName: "ListEscalations",
			Handler:    _DocflowService_ListEscalations_Handler,
		},
		{
			MethodName: "ResolveEscalations",
			Handler:    _DocflowService_ResolveEscalations_Handler,
		},
		{
			MethodName: "ExportLedger",
			Handler:    _DocflowService_ExportLedger_Handler,
		},
		{
			MethodName: "ImportLedger",
			Handler:    _DocflowService_ImportLedger_Handler,
		},
		{
			MethodName: "BuildInvoices",
			Handler:    _DocflowService_BuildInvoices_Handler,
		},
		{
			MethodName: "ListSubmissions",
			Handler:    _DocflowService_ListSubmissions_Handler,
		},
		{
			MethodName: "SubmitDocument",
			Handler:    _DocflowService_SubmitDocument_Handler,
		},
		{
			MethodName: "CancelDocument",
			Handler:    _DocflowService_CancelDocument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docflow/v1/docflow.proto",
}
