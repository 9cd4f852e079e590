// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docflow/v1/docflow.proto

package docflowpb

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

type LineItem struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Unit            string                 `protobuf:"bytes,2,opt,name=unit,proto3" json:"unit,omitempty"`
	Qty             string                 `protobuf:"bytes,3,opt,name=qty,proto3" json:"qty,omitempty"`
	Price           string                 `protobuf:"bytes,4,opt,name=price,proto3" json:"price,omitempty"`
	Sum             string                 `protobuf:"bytes,5,opt,name=sum,proto3" json:"sum,omitempty"`
	VatRate         string                 `protobuf:"bytes,6,opt,name=vat_rate,json=vatRate,proto3" json:"vat_rate,omitempty"`
	ProductId       string                 `protobuf:"bytes,7,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	ProductName     string                 `protobuf:"bytes,8,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	DestinationType string                 `protobuf:"bytes,9,opt,name=destination_type,json=destinationType,proto3" json:"destination_type,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{0}
}

func (x *LineItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *LineItem) GetUnit() string {
	if x != nil {
		return x.Unit
	}
	return ""
}

func (x *LineItem) GetQty() string {
	if x != nil {
		return x.Qty
	}
	return ""
}

func (x *LineItem) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

func (x *LineItem) GetSum() string {
	if x != nil {
		return x.Sum
	}
	return ""
}

func (x *LineItem) GetVatRate() string {
	if x != nil {
		return x.VatRate
	}
	return ""
}

func (x *LineItem) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *LineItem) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *LineItem) GetDestinationType() string {
	if x != nil {
		return x.DestinationType
	}
	return ""
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocType       string                 `protobuf:"bytes,2,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	DocNumber     string                 `protobuf:"bytes,3,opt,name=doc_number,json=docNumber,proto3" json:"doc_number,omitempty"`
	DocDate       string                 `protobuf:"bytes,4,opt,name=doc_date,json=docDate,proto3" json:"doc_date,omitempty"`
	SupplierName  string                 `protobuf:"bytes,5,opt,name=supplier_name,json=supplierName,proto3" json:"supplier_name,omitempty"`
	SupplierInn   string                 `protobuf:"bytes,6,opt,name=supplier_inn,json=supplierInn,proto3" json:"supplier_inn,omitempty"`
	Items         []*LineItem            `protobuf:"bytes,7,rep,name=items,proto3" json:"items,omitempty"`
	TotalAmount   string                 `protobuf:"bytes,8,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	Confidence    int32                  `protobuf:"varint,9,opt,name=confidence,proto3" json:"confidence,omitempty"`
	PageCount     int32                  `protobuf:"varint,10,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	IsMerged      bool                   `protobuf:"varint,11,opt,name=is_merged,json=isMerged,proto3" json:"is_merged,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,12,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	GroupKey      string                 `protobuf:"bytes,13,opt,name=group_key,json=groupKey,proto3" json:"group_key,omitempty"`
	Warnings      []string               `protobuf:"bytes,14,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Errors        []string               `protobuf:"bytes,15,rep,name=errors,proto3" json:"errors,omitempty"`
	Status        string                 `protobuf:"bytes,16,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{1}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *Document) GetDocNumber() string {
	if x != nil {
		return x.DocNumber
	}
	return ""
}

func (x *Document) GetDocDate() string {
	if x != nil {
		return x.DocDate
	}
	return ""
}

func (x *Document) GetSupplierName() string {
	if x != nil {
		return x.SupplierName
	}
	return ""
}

func (x *Document) GetSupplierInn() string {
	if x != nil {
		return x.SupplierInn
	}
	return ""
}

func (x *Document) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Document) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *Document) GetConfidence() int32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetIsMerged() bool {
	if x != nil {
		return x.IsMerged
	}
	return false
}

func (x *Document) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Document) GetGroupKey() string {
	if x != nil {
		return x.GroupKey
	}
	return ""
}

func (x *Document) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *Document) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type EscalationRow struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId     string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	RawName        string                 `protobuf:"bytes,3,opt,name=raw_name,json=rawName,proto3" json:"raw_name,omitempty"`
	NormalizedName string                 `protobuf:"bytes,4,opt,name=normalized_name,json=normalizedName,proto3" json:"normalized_name,omitempty"`
	CatalogType    string                 `protobuf:"bytes,5,opt,name=catalog_type,json=catalogType,proto3" json:"catalog_type,omitempty"`
	Resolved       bool                   `protobuf:"varint,6,opt,name=resolved,proto3" json:"resolved,omitempty"`
	ResolvedId     string                 `protobuf:"bytes,7,opt,name=resolved_id,json=resolvedId,proto3" json:"resolved_id,omitempty"`
	ResolvedName   string                 `protobuf:"bytes,8,opt,name=resolved_name,json=resolvedName,proto3" json:"resolved_name,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *EscalationRow) Reset() {
	*x = EscalationRow{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EscalationRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EscalationRow) ProtoMessage() {}

func (x *EscalationRow) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EscalationRow.ProtoReflect.Descriptor instead.
func (*EscalationRow) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{2}
}

func (x *EscalationRow) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *EscalationRow) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *EscalationRow) GetRawName() string {
	if x != nil {
		return x.RawName
	}
	return ""
}

func (x *EscalationRow) GetNormalizedName() string {
	if x != nil {
		return x.NormalizedName
	}
	return ""
}

func (x *EscalationRow) GetCatalogType() string {
	if x != nil {
		return x.CatalogType
	}
	return ""
}

func (x *EscalationRow) GetResolved() bool {
	if x != nil {
		return x.Resolved
	}
	return false
}

func (x *EscalationRow) GetResolvedId() string {
	if x != nil {
		return x.ResolvedId
	}
	return ""
}

func (x *EscalationRow) GetResolvedName() string {
	if x != nil {
		return x.ResolvedName
	}
	return ""
}

type ListDocumentsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// optional status filter; empty means all
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{3}
}

func (x *ListDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{4}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{5}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListEscalationsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// optional; empty means all documents
	DocumentId    string `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEscalationsRequest) Reset() {
	*x = ListEscalationsRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEscalationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEscalationsRequest) ProtoMessage() {}

func (x *ListEscalationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEscalationsRequest.ProtoReflect.Descriptor instead.
func (*ListEscalationsRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{7}
}

func (x *ListEscalationsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ListEscalationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*EscalationRow       `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEscalationsResponse) Reset() {
	*x = ListEscalationsResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEscalationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEscalationsResponse) ProtoMessage() {}

func (x *ListEscalationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEscalationsResponse.ProtoReflect.Descriptor instead.
func (*ListEscalationsResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{8}
}

func (x *ListEscalationsResponse) GetItems() []*EscalationRow {
	if x != nil {
		return x.Items
	}
	return nil
}

type ResolutionInput struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RawName       string                 `protobuf:"bytes,1,opt,name=raw_name,json=rawName,proto3" json:"raw_name,omitempty"`
	CatalogType   string                 `protobuf:"bytes,2,opt,name=catalog_type,json=catalogType,proto3" json:"catalog_type,omitempty"`
	CatalogId     string                 `protobuf:"bytes,3,opt,name=catalog_id,json=catalogId,proto3" json:"catalog_id,omitempty"`
	CatalogName   string                 `protobuf:"bytes,4,opt,name=catalog_name,json=catalogName,proto3" json:"catalog_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolutionInput) Reset() {
	*x = ResolutionInput{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolutionInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolutionInput) ProtoMessage() {}

func (x *ResolutionInput) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolutionInput.ProtoReflect.Descriptor instead.
func (*ResolutionInput) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{9}
}

func (x *ResolutionInput) GetRawName() string {
	if x != nil {
		return x.RawName
	}
	return ""
}

func (x *ResolutionInput) GetCatalogType() string {
	if x != nil {
		return x.CatalogType
	}
	return ""
}

func (x *ResolutionInput) GetCatalogId() string {
	if x != nil {
		return x.CatalogId
	}
	return ""
}

func (x *ResolutionInput) GetCatalogName() string {
	if x != nil {
		return x.CatalogName
	}
	return ""
}

type ResolveEscalationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Resolutions   []*ResolutionInput     `protobuf:"bytes,2,rep,name=resolutions,proto3" json:"resolutions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveEscalationsRequest) Reset() {
	*x = ResolveEscalationsRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveEscalationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveEscalationsRequest) ProtoMessage() {}

func (x *ResolveEscalationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveEscalationsRequest.ProtoReflect.Descriptor instead.
func (*ResolveEscalationsRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{10}
}

func (x *ResolveEscalationsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ResolveEscalationsRequest) GetResolutions() []*ResolutionInput {
	if x != nil {
		return x.Resolutions
	}
	return nil
}

type ResolveEscalationsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// items still open after applying the answers
	OpenItems      int32  `protobuf:"varint,1,opt,name=open_items,json=openItems,proto3" json:"open_items,omitempty"`
	DocumentStatus string `protobuf:"bytes,2,opt,name=document_status,json=documentStatus,proto3" json:"document_status,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ResolveEscalationsResponse) Reset() {
	*x = ResolveEscalationsResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveEscalationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveEscalationsResponse) ProtoMessage() {}

func (x *ResolveEscalationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveEscalationsResponse.ProtoReflect.Descriptor instead.
func (*ResolveEscalationsResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{11}
}

func (x *ResolveEscalationsResponse) GetOpenItems() int32 {
	if x != nil {
		return x.OpenItems
	}
	return 0
}

func (x *ResolveEscalationsResponse) GetDocumentStatus() string {
	if x != nil {
		return x.DocumentStatus
	}
	return ""
}

type ExportLedgerRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// optional; empty means all open rows
	DocumentId    string `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLedgerRequest) Reset() {
	*x = ExportLedgerRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLedgerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLedgerRequest) ProtoMessage() {}

func (x *ExportLedgerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLedgerRequest.ProtoReflect.Descriptor instead.
func (*ExportLedgerRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{12}
}

func (x *ExportLedgerRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ExportLedgerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportLedgerResponse) Reset() {
	*x = ExportLedgerResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportLedgerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportLedgerResponse) ProtoMessage() {}

func (x *ExportLedgerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportLedgerResponse.ProtoReflect.Descriptor instead.
func (*ExportLedgerResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{13}
}

func (x *ExportLedgerResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ImportLedgerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportLedgerRequest) Reset() {
	*x = ImportLedgerRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportLedgerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportLedgerRequest) ProtoMessage() {}

func (x *ImportLedgerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportLedgerRequest.ProtoReflect.Descriptor instead.
func (*ImportLedgerRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{14}
}

func (x *ImportLedgerRequest) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ImportLedgerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applied       int32                  `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
	Warnings      []string               `protobuf:"bytes,2,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportLedgerResponse) Reset() {
	*x = ImportLedgerResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportLedgerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportLedgerResponse) ProtoMessage() {}

func (x *ImportLedgerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportLedgerResponse.ProtoReflect.Descriptor instead.
func (*ImportLedgerResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{15}
}

func (x *ImportLedgerResponse) GetApplied() int32 {
	if x != nil {
		return x.Applied
	}
	return 0
}

func (x *ImportLedgerResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type SubmissionRecord struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId      string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	DocNumber       string                 `protobuf:"bytes,3,opt,name=doc_number,json=docNumber,proto3" json:"doc_number,omitempty"`
	DestinationType string                 `protobuf:"bytes,4,opt,name=destination_type,json=destinationType,proto3" json:"destination_type,omitempty"`
	StoreId         string                 `protobuf:"bytes,5,opt,name=store_id,json=storeId,proto3" json:"store_id,omitempty"`
	StoreName       string                 `protobuf:"bytes,6,opt,name=store_name,json=storeName,proto3" json:"store_name,omitempty"`
	SupplierId      string                 `protobuf:"bytes,7,opt,name=supplier_id,json=supplierId,proto3" json:"supplier_id,omitempty"`
	SupplierName    string                 `protobuf:"bytes,8,opt,name=supplier_name,json=supplierName,proto3" json:"supplier_name,omitempty"`
	DocDate         string                 `protobuf:"bytes,9,opt,name=doc_date,json=docDate,proto3" json:"doc_date,omitempty"`
	Items           []*LineItem            `protobuf:"bytes,10,rep,name=items,proto3" json:"items,omitempty"`
	TotalAmount     string                 `protobuf:"bytes,11,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	Status          string                 `protobuf:"bytes,12,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage    string                 `protobuf:"bytes,13,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Warnings        []string               `protobuf:"bytes,14,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *SubmissionRecord) Reset() {
	*x = SubmissionRecord{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmissionRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmissionRecord) ProtoMessage() {}

func (x *SubmissionRecord) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmissionRecord.ProtoReflect.Descriptor instead.
func (*SubmissionRecord) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{16}
}

func (x *SubmissionRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SubmissionRecord) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *SubmissionRecord) GetDocNumber() string {
	if x != nil {
		return x.DocNumber
	}
	return ""
}

func (x *SubmissionRecord) GetDestinationType() string {
	if x != nil {
		return x.DestinationType
	}
	return ""
}

func (x *SubmissionRecord) GetStoreId() string {
	if x != nil {
		return x.StoreId
	}
	return ""
}

func (x *SubmissionRecord) GetStoreName() string {
	if x != nil {
		return x.StoreName
	}
	return ""
}

func (x *SubmissionRecord) GetSupplierId() string {
	if x != nil {
		return x.SupplierId
	}
	return ""
}

func (x *SubmissionRecord) GetSupplierName() string {
	if x != nil {
		return x.SupplierName
	}
	return ""
}

func (x *SubmissionRecord) GetDocDate() string {
	if x != nil {
		return x.DocDate
	}
	return ""
}

func (x *SubmissionRecord) GetItems() []*LineItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *SubmissionRecord) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *SubmissionRecord) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SubmissionRecord) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *SubmissionRecord) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type BuildInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BuildInvoicesRequest) Reset() {
	*x = BuildInvoicesRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BuildInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BuildInvoicesRequest) ProtoMessage() {}

func (x *BuildInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BuildInvoicesRequest.ProtoReflect.Descriptor instead.
func (*BuildInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{17}
}

func (x *BuildInvoicesRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type BuildInvoicesResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Records []*SubmissionRecord    `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	// raw names of line items left out of every record
	Dropped       []string `protobuf:"bytes,2,rep,name=dropped,proto3" json:"dropped,omitempty"`
	Warnings      []string `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BuildInvoicesResponse) Reset() {
	*x = BuildInvoicesResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BuildInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BuildInvoicesResponse) ProtoMessage() {}

func (x *BuildInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BuildInvoicesResponse.ProtoReflect.Descriptor instead.
func (*BuildInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{18}
}

func (x *BuildInvoicesResponse) GetRecords() []*SubmissionRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

func (x *BuildInvoicesResponse) GetDropped() []string {
	if x != nil {
		return x.Dropped
	}
	return nil
}

func (x *BuildInvoicesResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type ListSubmissionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubmissionsRequest) Reset() {
	*x = ListSubmissionsRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubmissionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubmissionsRequest) ProtoMessage() {}

func (x *ListSubmissionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubmissionsRequest.ProtoReflect.Descriptor instead.
func (*ListSubmissionsRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{19}
}

func (x *ListSubmissionsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ListSubmissionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*SubmissionRecord    `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubmissionsResponse) Reset() {
	*x = ListSubmissionsResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubmissionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubmissionsResponse) ProtoMessage() {}

func (x *ListSubmissionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubmissionsResponse.ProtoReflect.Descriptor instead.
func (*ListSubmissionsResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{20}
}

func (x *ListSubmissionsResponse) GetRecords() []*SubmissionRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type SubmitDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordId      string                 `protobuf:"bytes,1,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{21}
}

func (x *SubmitDocumentRequest) GetRecordId() string {
	if x != nil {
		return x.RecordId
	}
	return ""
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{22}
}

func (x *SubmitDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type CancelDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecordId      string                 `protobuf:"bytes,1,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelDocumentRequest) Reset() {
	*x = CancelDocumentRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelDocumentRequest) ProtoMessage() {}

func (x *CancelDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelDocumentRequest.ProtoReflect.Descriptor instead.
func (*CancelDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{23}
}

func (x *CancelDocumentRequest) GetRecordId() string {
	if x != nil {
		return x.RecordId
	}
	return ""
}

type CancelDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelDocumentResponse) Reset() {
	*x = CancelDocumentResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelDocumentResponse) ProtoMessage() {}

func (x *CancelDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelDocumentResponse.ProtoReflect.Descriptor instead.
func (*CancelDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{24}
}

func (x *CancelDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

var File_docflow_v1_docflow_proto protoreflect.FileDescriptor

const file_docflow_v1_docflow_proto_rawDesc = "" +
	"\n" +
	"\x18docflow/v1/docflow.proto\x12\n" +
	"docflow.v1\"\xf4\x01\n" +
	"\bLineItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04unit\x18\x02 \x01(\tR\x04unit\x12\x10\n" +
	"\x03qty\x18\x03 \x01(\tR\x03qty\x12\x14\n" +
	"\x05price\x18\x04 \x01(\tR\x05price\x12\x10\n" +
	"\x03sum\x18\x05 \x01(\tR\x03sum\x12\x19\n" +
	"\bvat_rate\x18\x06 \x01(\tR\avatRate\x12\x1d\n" +
	"\n" +
	"product_id\x18\a \x01(\tR\tproductId\x12!\n" +
	"\fproduct_name\x18\b \x01(\tR\vproductName\x12)\n" +
	"\x10destination_type\x18\t \x01(\tR\x0fdestinationType\"\x8d\x04\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bdoc_type\x18\x02 \x01(\tR\adocType\x12\x1d\n" +
	"\n" +
	"doc_number\x18\x03 \x01(\tR\tdocNumber\x12\x19\n" +
	"\bdoc_date\x18\x04 \x01(\tR\adocDate\x12#\n" +
	"\rsupplier_name\x18\x05 \x01(\tR\fsupplierName\x12!\n" +
	"\fsupplier_inn\x18\x06 \x01(\tR\vsupplierInn\x12*\n" +
	"\x05items\x18\a \x03(\v2\x14.docflow.v1.LineItemR\x05items\x12!\n" +
	"\ftotal_amount\x18\b \x01(\tR\vtotalAmount\x12\x1e\n" +
	"\n" +
	"confidence\x18\t \x01(\x05R\n" +
	"confidence\x12\x1d\n" +
	"\n" +
	"page_count\x18\n" +
	" \x01(\x05R\tpageCount\x12\x1b\n" +
	"\tis_merged\x18\v \x01(\bR\bisMerged\x12!\n" +
	"\fneeds_review\x18\f \x01(\bR\vneedsReview\x12\x1b\n" +
	"\tgroup_key\x18\r \x01(\tR\bgroupKey\x12\x1a\n" +
	"\bwarnings\x18\x0e \x03(\tR\bwarnings\x12\x16\n" +
	"\x06errors\x18\x0f \x03(\tR\x06errors\x12\x16\n" +
	"\x06status\x18\x10 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAt\"\x89\x02\n" +
	"\rEscalationRow\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x19\n" +
	"\braw_name\x18\x03 \x01(\tR\arawName\x12'\n" +
	"\x0fnormalized_name\x18\x04 \x01(\tR\x0enormalizedName\x12!\n" +
	"\fcatalog_type\x18\x05 \x01(\tR\vcatalogType\x12\x1a\n" +
	"\bresolved\x18\x06 \x01(\bR\bresolved\x12\x1f\n" +
	"\vresolved_id\x18\a \x01(\tR\n" +
	"resolvedId\x12#\n" +
	"\rresolved_name\x18\b \x01(\tR\fresolvedName\".\n" +
	"\x14ListDocumentsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"K\n" +
	"\x15ListDocumentsResponse\x122\n" +
	"\tdocuments\x18\x01 \x03(\v2\x14.docflow.v1.DocumentR\tdocuments\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"G\n" +
	"\x13GetDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docflow.v1.DocumentR\bdocument\"9\n" +
	"\x16ListEscalationsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"J\n" +
	"\x17ListEscalationsResponse\x12/\n" +
	"\x05items\x18\x01 \x03(\v2\x19.docflow.v1.EscalationRowR\x05items\"\x91\x01\n" +
	"\x0fResolutionInput\x12\x19\n" +
	"\braw_name\x18\x01 \x01(\tR\arawName\x12!\n" +
	"\fcatalog_type\x18\x02 \x01(\tR\vcatalogType\x12\x1d\n" +
	"\n" +
	"catalog_id\x18\x03 \x01(\tR\tcatalogId\x12!\n" +
	"\fcatalog_name\x18\x04 \x01(\tR\vcatalogName\"{\n" +
	"\x19ResolveEscalationsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12=\n" +
	"\vresolutions\x18\x02 \x03(\v2\x1b.docflow.v1.ResolutionInputR\vresolutions\"d\n" +
	"\x1aResolveEscalationsResponse\x12\x1d\n" +
	"\n" +
	"open_items\x18\x01 \x01(\x05R\topenItems\x12'\n" +
	"\x0fdocument_status\x18\x02 \x01(\tR\x0edocumentStatus\"6\n" +
	"\x13ExportLedgerRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"*\n" +
	"\x14ExportLedgerResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\")\n" +
	"\x13ImportLedgerRequest\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"L\n" +
	"\x14ImportLedgerResponse\x12\x18\n" +
	"\aapplied\x18\x01 \x01(\x05R\aapplied\x12\x1a\n" +
	"\bwarnings\x18\x02 \x03(\tR\bwarnings\"\xd0\x03\n" +
	"\x10SubmissionRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"doc_number\x18\x03 \x01(\tR\tdocNumber\x12)\n" +
	"\x10destination_type\x18\x04 \x01(\tR\x0fdestinationType\x12\x19\n" +
	"\bstore_id\x18\x05 \x01(\tR\astoreId\x12\x1d\n" +
	"\n" +
	"store_name\x18\x06 \x01(\tR\tstoreName\x12\x1f\n" +
	"\vsupplier_id\x18\a \x01(\tR\n" +
	"supplierId\x12#\n" +
	"\rsupplier_name\x18\b \x01(\tR\fsupplierName\x12\x19\n" +
	"\bdoc_date\x18\t \x01(\tR\adocDate\x12*\n" +
	"\x05items\x18\n" +
	" \x03(\v2\x14.docflow.v1.LineItemR\x05items\x12!\n" +
	"\ftotal_amount\x18\v \x01(\tR\vtotalAmount\x12\x16\n" +
	"\x06status\x18\f \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\r \x01(\tR\ferrorMessage\x12\x1a\n" +
	"\bwarnings\x18\x0e \x03(\tR\bwarnings\"7\n" +
	"\x14BuildInvoicesRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x85\x01\n" +
	"\x15BuildInvoicesResponse\x126\n" +
	"\arecords\x18\x01 \x03(\v2\x1c.docflow.v1.SubmissionRecordR\arecords\x12\x18\n" +
	"\adropped\x18\x02 \x03(\tR\adropped\x12\x1a\n" +
	"\bwarnings\x18\x03 \x03(\tR\bwarnings\"9\n" +
	"\x16ListSubmissionsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"Q\n" +
	"\x17ListSubmissionsResponse\x126\n" +
	"\arecords\x18\x01 \x03(\v2\x1c.docflow.v1.SubmissionRecordR\arecords\"4\n" +
	"\x15SubmitDocumentRequest\x12\x1b\n" +
	"\trecord_id\x18\x01 \x01(\tR\brecordId\"0\n" +
	"\x16SubmitDocumentResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"4\n" +
	"\x15CancelDocumentRequest\x12\x1b\n" +
	"\trecord_id\x18\x01 \x01(\tR\brecordId\"0\n" +
	"\x16CancelDocumentResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status2\x81\a\n" +
	"\x0eDocflowService\x12T\n" +
	"\rListDocuments\x12 .docflow.v1.ListDocumentsRequest\x1a!.docflow.v1.ListDocumentsResponse\x12N\n" +
	"\vGetDocument\x12\x1e.docflow.v1.GetDocumentRequest\x1a\x1f.docflow.v1.GetDocumentResponse\x12Z\n" +
	"\x0fListEscalations\x12\".docflow.v1.ListEscalationsRequest\x1a#.docflow.v1.ListEscalationsResponse\x12c\n" +
	"\x12ResolveEscalations\x12%.docflow.v1.ResolveEscalationsRequest\x1a&.docflow.v1.ResolveEscalationsResponse\x12Q\n" +
	"\fExportLedger\x12\x1f.docflow.v1.ExportLedgerRequest\x1a .docflow.v1.ExportLedgerResponse\x12Q\n" +
	"\fImportLedger\x12\x1f.docflow.v1.ImportLedgerRequest\x1a .docflow.v1.ImportLedgerResponse\x12T\n" +
	"\rBuildInvoices\x12 .docflow.v1.BuildInvoicesRequest\x1a!.docflow.v1.BuildInvoicesResponse\x12Z\n" +
	"\x0fListSubmissions\x12\".docflow.v1.ListSubmissionsRequest\x1a#.docflow.v1.ListSubmissionsResponse\x12W\n" +
	"\x0eSubmitDocument\x12!.docflow.v1.SubmitDocumentRequest\x1a\".docflow.v1.SubmitDocumentResponse\x12W\n" +
	"\x0eCancelDocument\x12!.docflow.v1.CancelDocumentRequest\x1a\".docflow.v1.CancelDocumentResponseB>Z<github.com/paradize/restodocs/gen/proto/docflow/v1;docflowpbb\x06proto3"

var (
	file_docflow_v1_docflow_proto_rawDescOnce sync.Once
	file_docflow_v1_docflow_proto_rawDescData []byte
)

func file_docflow_v1_docflow_proto_rawDescGZIP() []byte {
	file_docflow_v1_docflow_proto_rawDescOnce.Do(func() {
		file_docflow_v1_docflow_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docflow_v1_docflow_proto_rawDesc), len(file_docflow_v1_docflow_proto_rawDesc)))
	})
	return file_docflow_v1_docflow_proto_rawDescData
}

var file_docflow_v1_docflow_proto_msgTypes = make([]protoimpl.MessageInfo, 25)
var file_docflow_v1_docflow_proto_goTypes = []any{
	(*LineItem)(nil),                   // 0: docflow.v1.LineItem
	(*Document)(nil),                   // 1: docflow.v1.Document
	(*EscalationRow)(nil),              // 2: docflow.v1.EscalationRow
	(*ListDocumentsRequest)(nil),       // 3: docflow.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),      // 4: docflow.v1.ListDocumentsResponse
	(*GetDocumentRequest)(nil),         // 5: docflow.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),        // 6: docflow.v1.GetDocumentResponse
	(*ListEscalationsRequest)(nil),     // 7: docflow.v1.ListEscalationsRequest
	(*ListEscalationsResponse)(nil),    // 8: docflow.v1.ListEscalationsResponse
	(*ResolutionInput)(nil),            // 9: docflow.v1.ResolutionInput
	(*ResolveEscalationsRequest)(nil),  // 10: docflow.v1.ResolveEscalationsRequest
	(*ResolveEscalationsResponse)(nil), // 11: docflow.v1.ResolveEscalationsResponse
	(*ExportLedgerRequest)(nil),        // 12: docflow.v1.ExportLedgerRequest
	(*ExportLedgerResponse)(nil),       // 13: docflow.v1.ExportLedgerResponse
	(*ImportLedgerRequest)(nil),        // 14: docflow.v1.ImportLedgerRequest
	(*ImportLedgerResponse)(nil),       // 15: docflow.v1.ImportLedgerResponse
	(*SubmissionRecord)(nil),           // 16: docflow.v1.SubmissionRecord
	(*BuildInvoicesRequest)(nil),       // 17: docflow.v1.BuildInvoicesRequest
	(*BuildInvoicesResponse)(nil),      // 18: docflow.v1.BuildInvoicesResponse
	(*ListSubmissionsRequest)(nil),     // 19: docflow.v1.ListSubmissionsRequest
	(*ListSubmissionsResponse)(nil),    // 20: docflow.v1.ListSubmissionsResponse
	(*SubmitDocumentRequest)(nil),      // 21: docflow.v1.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),     // 22: docflow.v1.SubmitDocumentResponse
	(*CancelDocumentRequest)(nil),      // 23: docflow.v1.CancelDocumentRequest
	(*CancelDocumentResponse)(nil),     // 24: docflow.v1.CancelDocumentResponse
}
var file_docflow_v1_docflow_proto_depIdxs = []int32{
	0,  // 0: docflow.v1.Document.items:type_name -> docflow.v1.LineItem
	1,  // 1: docflow.v1.ListDocumentsResponse.documents:type_name -> docflow.v1.Document
	1,  // 2: docflow.v1.GetDocumentResponse.document:type_name -> docflow.v1.Document
	2,  // 3: docflow.v1.ListEscalationsResponse.items:type_name -> docflow.v1.EscalationRow
	9,  // 4: docflow.v1.ResolveEscalationsRequest.resolutions:type_name -> docflow.v1.ResolutionInput
	0,  // 5: docflow.v1.SubmissionRecord.items:type_name -> docflow.v1.LineItem
	16, // 6: docflow.v1.BuildInvoicesResponse.records:type_name -> docflow.v1.SubmissionRecord
	16, // 7: docflow.v1.ListSubmissionsResponse.records:type_name -> docflow.v1.SubmissionRecord
	3,  // 8: docflow.v1.DocflowService.ListDocuments:input_type -> docflow.v1.ListDocumentsRequest
	5,  // 9: docflow.v1.DocflowService.GetDocument:input_type -> docflow.v1.GetDocumentRequest
	7,  // 10: docflow.v1.DocflowService.ListEscalations:input_type -> docflow.v1.ListEscalationsRequest
	10, // 11: docflow.v1.DocflowService.ResolveEscalations:input_type -> docflow.v1.ResolveEscalationsRequest
	12, // 12: docflow.v1.DocflowService.ExportLedger:input_type -> docflow.v1.ExportLedgerRequest
	14, // 13: docflow.v1.DocflowService.ImportLedger:input_type -> docflow.v1.ImportLedgerRequest
	17, // 14: docflow.v1.DocflowService.BuildInvoices:input_type -> docflow.v1.BuildInvoicesRequest
	19, // 15: docflow.v1.DocflowService.ListSubmissions:input_type -> docflow.v1.ListSubmissionsRequest
	21, // 16: docflow.v1.DocflowService.SubmitDocument:input_type -> docflow.v1.SubmitDocumentRequest
	23, // 17: docflow.v1.DocflowService.CancelDocument:input_type -> docflow.v1.CancelDocumentRequest
	4,  // 18: docflow.v1.DocflowService.ListDocuments:output_type -> docflow.v1.ListDocumentsResponse
	6,  // 19: docflow.v1.DocflowService.GetDocument:output_type -> docflow.v1.GetDocumentResponse
	8,  // 20: docflow.v1.DocflowService.ListEscalations:output_type -> docflow.v1.ListEscalationsResponse
	11, // 21: docflow.v1.DocflowService.ResolveEscalations:output_type -> docflow.v1.ResolveEscalationsResponse
	13, // 22: docflow.v1.DocflowService.ExportLedger:output_type -> docflow.v1.ExportLedgerResponse
	15, // 23: docflow.v1.DocflowService.ImportLedger:output_type -> docflow.v1.ImportLedgerResponse
	18, // 24: docflow.v1.DocflowService.BuildInvoices:output_type -> docflow.v1.BuildInvoicesResponse
	20, // 25: docflow.v1.DocflowService.ListSubmissions:output_type -> docflow.v1.ListSubmissionsResponse
	22, // 26: docflow.v1.DocflowService.SubmitDocument:output_type -> docflow.v1.SubmitDocumentResponse
	24, // 27: docflow.v1.DocflowService.CancelDocument:output_type -> docflow.v1.CancelDocumentResponse
	18, // [18:28] is the sub-list for method output_type
	8,  // [8:18] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_docflow_v1_docflow_proto_init() }
func file_docflow_v1_docflow_proto_init() {
	if File_docflow_v1_docflow_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docflow_v1_docflow_proto_rawDesc), len(file_docflow_v1_docflow_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   25,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docflow_v1_docflow_proto_goTypes,
		DependencyIndexes: file_docflow_v1_docflow_proto_depIdxs,
		MessageInfos:      file_docflow_v1_docflow_proto_msgTypes,
	}.Build()
	File_docflow_v1_docflow_proto = out.File
	file_docflow_v1_docflow_proto_goTypes = nil
	file_docflow_v1_docflow_proto_depIdxs = nil
}
