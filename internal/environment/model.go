// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package environment

type BodyType string

const (
	BodyInline     BodyType = "INLINE"
	BodyFile       BodyType = "FILE"
	BodyDatabucket BodyType = "DATABUCKET"
)

type RulesOperator string

const (
	OperatorAnd RulesOperator = "AND"
	OperatorOr  RulesOperator = "OR"
)

type RouteType string

const (
	RouteHTTP      RouteType = "http"
	RouteCRUD      RouteType = "crud"
	RouteWebSocket RouteType = "ws"
)

type ChildType string

const (
	ChildRoute  ChildType = "route"
	ChildFolder ChildType = "folder"
)

// HeaderPair keeps insertion order; later duplicate keys may override at
// serving time, which is the runtime's concern, not ours.
type HeaderPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type TLSOptions struct {
	Enabled    bool   `json:"enabled"`
	Type       string `json:"type,omitempty"`
	PfxPath    string `json:"pfxPath,omitempty"`
	CertPath   string `json:"certPath,omitempty"`
	KeyPath    string `json:"keyPath,omitempty"`
	CaPath     string `json:"caPath,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
}

// Callback is an outgoing request definition the runtime can fire after
// serving a response.
type Callback struct {
	UUID          string       `json:"uuid"`
	ID            string       `json:"id,omitempty"`
	Name          string       `json:"name,omitempty"`
	Documentation string       `json:"documentation,omitempty"`
	Method        string       `json:"method"`
	URI           string       `json:"uri"`
	Headers       []HeaderPair `json:"headers,omitempty"`
	BodyType      BodyType     `json:"bodyType,omitempty"`
	Body          string       `json:"body,omitempty"`
}

// CallbackInvocation references a Callback from a response.
type CallbackInvocation struct {
	UUID    string `json:"uuid"`
	Latency int    `json:"latency"`
}

// Settings is the single environment-wide record. Absent optional fields
// stay absent; no defaulting happens after load.
type Settings struct {
	UUID           string       `json:"uuid"`
	Name           string       `json:"name"`
	Port           int          `json:"port"`
	Hostname       string       `json:"hostname,omitempty"`
	EndpointPrefix string       `json:"endpointPrefix,omitempty"`
	Latency        int          `json:"latency"`
	ProxyMode      bool         `json:"proxyMode"`
	ProxyHost      string       `json:"proxyHost,omitempty"`
	Cors           bool         `json:"cors"`
	Headers        []HeaderPair `json:"headers,omitempty"`
	TLSOptions     TLSOptions   `json:"tlsOptions"`
	Callbacks      []Callback   `json:"callbacks,omitempty"`
}

// ChildRef links a parent to a child without embedding the child object.
type ChildRef struct {
	Type ChildType `json:"type"`
	UUID string    `json:"uuid"`
}

// Folder groups the routes of one feature subdirectory. Children is
// populated during loading, never taken from disk.
type Folder struct {
	UUID     string     `json:"uuid"`
	Name     string     `json:"name"`
	Children []ChildRef `json:"children"`
}

// MatchRule targets: body, query, header, cookie, params, path, method,
// request_number, global_var, data_bucket, templating.
type MatchRule struct {
	Target   string `json:"target"`
	Modifier string `json:"modifier"`
	Value    string `json:"value"`
	Invert   bool   `json:"invert"`
	Operator string `json:"operator"`
}

type ResponseSpec struct {
	UUID              string               `json:"uuid"`
	Rules             []MatchRule          `json:"rules"`
	RulesOperator     RulesOperator        `json:"rulesOperator"`
	StatusCode        int                  `json:"statusCode"`
	Label             string               `json:"label"`
	Headers           []HeaderPair         `json:"headers"`
	BodyType          BodyType             `json:"bodyType"`
	Body              any                  `json:"body"`
	FilePath          string               `json:"filePath,omitempty"`
	DatabucketID      string               `json:"databucketID,omitempty"`
	Latency           int                  `json:"latency"`
	DisableTemplating bool                 `json:"disableTemplating"`
	FallbackTo404     bool                 `json:"fallbackTo404"`
	Default           bool                 `json:"default"`
	CrudKey           string               `json:"crudKey,omitempty"`
	Callbacks         []CallbackInvocation `json:"callbacks,omitempty"`
}

type Route struct {
	UUID              string         `json:"uuid"`
	Type              RouteType      `json:"type"`
	Documentation     string         `json:"documentation"`
	Method            string         `json:"method"`
	Endpoint          string         `json:"endpoint"`
	Responses         []ResponseSpec `json:"responses"`
	ResponseMode      string         `json:"responseMode,omitempty"`
	StreamingMode     string         `json:"streamingMode,omitempty"`
	StreamingInterval int            `json:"streamingInterval,omitempty"`
}

// DataBucket carries an opaque templated value evaluated by the runtime.
type DataBucket struct {
	UUID          string `json:"uuid"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	Documentation string `json:"documentation"`
	Value         string `json:"value"`
}

// Document is the aggregated artifact. Settings fields are inlined at the
// top level through embedding; field order here is the wire order.
type Document struct {
	Settings
	Folders      []Folder     `json:"folders"`
	Routes       []Route      `json:"routes"`
	Data         []DataBucket `json:"data"`
	RootChildren []ChildRef   `json:"rootChildren"`
}
