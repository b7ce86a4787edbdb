package main

type uiState struct {
	mode        mode
	noticeMsg   string
	noticeKind  noticeKind
	noticeSeq   int
	mouseTarget mouseTarget
	mouseRow    int
}
