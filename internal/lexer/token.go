package lexer

import (
	"fmt"

	"github.com/ailang-lang/ailang/internal/position"
)

// TokenType identifies the lexical class of a token.
type TokenType int

// String returns the display name of the token type.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token types for the AILang surface syntax.
const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError
	TokenNewline

	// Literals
	TokenIdentifier
	TokenNumber
	TokenString

	// Comments
	TokenComment
	TokenDocComment
	TokenComComment
	TokenTagComment

	// Control flow keywords
	TokenRunTask
	TokenPrintMessage
	TokenReturnValue
	TokenIfCondition
	TokenThenBlock
	TokenElseBlock
	TokenChoosePath
	TokenCaseOption
	TokenDefaultOption
	TokenWhileLoop
	TokenUntilCondition
	TokenForEvery
	TokenIn
	TokenTryBlock
	TokenCatchError
	TokenFinallyBlock
	TokenSendMessage
	TokenReceiveMessage
	TokenEveryInterval
	TokenBreakLoop
	TokenHaltProgram
	TokenContinueLoop

	// Pool types
	TokenFixedPool
	TokenDynamicPool
	TokenTemporalPool
	TokenNeuralPool
	TokenKernelPool
	TokenActorPool
	TokenSecurityPool
	TokenConstrainedPool
	TokenFilePool

	// Pool operations
	TokenSubPool
	TokenInitialize
	TokenCanChange
	TokenCanBeNull
	TokenRange
	TokenMaximumLength
	TokenMinimumLength
	TokenElementType
	TokenWhere

	// Named math operators
	TokenAdd
	TokenSubtract
	TokenMultiply
	TokenDivide
	TokenPower
	TokenModulo
	TokenSquareRoot
	TokenAbsoluteValue

	// Named comparison operators
	TokenGreaterThan
	TokenLessThan
	TokenGreaterEqual
	TokenLessEqual
	TokenEqualTo
	TokenNotEqual

	// Named logical operators
	TokenAnd
	TokenOr
	TokenNot
	TokenXor
	TokenImplies

	// Named bitwise operators
	TokenBitwiseAnd
	TokenBitwiseOr
	TokenBitwiseXor
	TokenBitwiseNot
	TokenLeftShift
	TokenRightShift

	// Interactive input functions
	TokenReadInput
	TokenReadInputNumber
	TokenGetUserChoice
	TokenReadKey

	// String comparison functions
	TokenStringEquals
	TokenStringContains
	TokenStringStartsWith
	TokenStringEndsWith
	TokenStringCompare

	// String manipulation functions
	TokenStringConcat
	TokenStringLength
	TokenStringSubstring
	TokenStringToUpper
	TokenStringToLower
	TokenStringTrim
	TokenStringReplace
	TokenStringToString
	TokenNumberToString
	TokenStringToNumber

	// File I/O operations
	TokenOpenFile
	TokenCloseFile
	TokenReadFile
	TokenWriteFile
	TokenCreateFile
	TokenDeleteFile
	TokenReadLine
	TokenWriteLine
	TokenReadTextFile
	TokenWriteTextFile
	TokenAppendTextFile
	TokenReadBinaryFile
	TokenWriteBinaryFile
	TokenAppendBinaryFile
	TokenFileExists
	TokenGetFileSize
	TokenGetFileDate
	TokenSetFileDate
	TokenGetFilePermissions
	TokenSetFilePermissions
	TokenSeekPosition
	TokenGetPosition
	TokenRewind
	TokenCopyFile
	TokenMoveFile
	TokenRenameFile
	TokenFlushFile
	TokenLockFile
	TokenUnlockFile
	TokenCreateDirectory
	TokenDeleteDirectory
	TokenListDirectory
	TokenDirectoryExists
	TokenGetWorkingDirectory
	TokenSetWorkingDirectory
	TokenBufferedRead
	TokenBufferedWrite
	TokenSetBufferSize
	TokenFlushBuffers

	// Memory and pointer operations
	TokenPointer
	TokenDereference
	TokenAddressOf
	TokenSizeOf
	TokenAllocate
	TokenDeallocate
	TokenMemoryCopy
	TokenMemorySet
	TokenMemoryCompare

	// Hardware register access
	TokenHardwareRegister
	TokenControlRegister
	TokenSegmentRegister
	TokenFlagsRegister
	TokenModelSpecificRegister

	// Port I/O operations
	TokenPortRead
	TokenPortWrite
	TokenPortReadByte
	TokenPortWriteByte
	TokenPortReadWord
	TokenPortWriteWord
	TokenPortReadDWord
	TokenPortWriteDWord

	// Interrupt and exception handling
	TokenInterruptHandler
	TokenExceptionHandler
	TokenEnableInterrupts
	TokenDisableInterrupts
	TokenHalt
	TokenWait
	TokenTriggerSoftwareInterrupt
	TokenInterruptVector

	// Atomic operations
	TokenAtomicRead
	TokenAtomicWrite
	TokenAtomicAdd
	TokenAtomicSubtract
	TokenAtomicCompareSwap
	TokenAtomicExchange
	TokenCompilerFence

	// Cache and memory management
	TokenCacheInvalidate
	TokenCacheFlush
	TokenTLBInvalidate
	TokenTLBFlush
	TokenPhysicalMemory

	// Inline assembly
	TokenInlineAssembly
	TokenAssembly
	TokenVolatile
	TokenBarrier

	// System calls and kernel operations
	TokenSystemCall
	TokenPrivilegeLevel
	TokenTaskSwitch
	TokenProcessContext

	// Device driver operations
	TokenDeviceDriver
	TokenDeviceRegister
	TokenDMAOperation
	TokenMMIORead
	TokenMMIOWrite
	TokenDeviceInterrupt

	// Boot and initialization
	TokenBootloader
	TokenKernelEntry
	TokenInitialization
	TokenGlobalConstructors
	TokenGlobalDestructors

	// Virtual memory namespaces
	TokenPageTable
	TokenVirtualMemory
	TokenMMIO
	TokenCache
	TokenTLB
	TokenMemoryBarrier

	// Memory management flags
	TokenReadOnly
	TokenReadWrite
	TokenReadExecute
	TokenReadWriteExecute
	TokenUserMode
	TokenKernelMode
	TokenGlobal
	TokenDirty
	TokenAccessed

	// Cache types and levels
	TokenCached
	TokenUncached
	TokenWriteCombining
	TokenWriteThrough
	TokenWriteBack
	TokenL1Cache
	TokenL2Cache
	TokenL3Cache

	// Page sizes
	TokenPageSize4KB
	TokenPageSize2MB
	TokenPageSize1GB

	// TLB operations
	TokenInvalidate
	TokenFlush
	TokenFlushAll
	TokenFlushGlobal

	// Type fusion
	TokenFusedType

	// Lambda and function keywords
	TokenFunction
	TokenLambda
	TokenApply
	TokenCombinator
	TokenInput
	TokenOutput
	TokenBody
	TokenCurry
	TokenUncurry
	TokenCompose

	// Type keywords
	TokenInteger
	TokenFloatingPoint
	TokenText
	TokenBoolean
	TokenAddress
	TokenArray
	TokenMap
	TokenTuple
	TokenRecord
	TokenOptionalType
	TokenConstrainedType
	TokenAny
	TokenVoid

	// Low-level type keywords
	TokenByte
	TokenWord
	TokenDWord
	TokenQWord
	TokenUInt8
	TokenUInt16
	TokenUInt32
	TokenUInt64
	TokenInt8
	TokenInt16
	TokenInt32
	TokenInt64

	// Macro keywords
	TokenMacroBlock
	TokenMacro
	TokenRunMacro
	TokenExpandMacro

	// Security keywords
	TokenSecurityContext
	TokenWithSecurity
	TokenAllowedOperations
	TokenDeniedOperations
	TokenMemoryLimit
	TokenCPUQuota
	TokenLevel

	// System and hardware keywords
	TokenHardware
	TokenSyscall
	TokenInterrupt
	TokenRegister
	TokenMemory
	TokenPhysicalAddress
	TokenVirtualAddress
	TokenFlags

	// Code organization
	TokenSubRoutine
	TokenLibraryImport
	TokenLoopMain
	TokenLoopActor
	TokenLoopStart
	TokenLoopEnd
	TokenLoopShadow

	// Constant values
	TokenTrue
	TokenFalse
	TokenNull
	TokenAutomatic
	TokenUnlimited

	// Mathematical constants
	TokenConstant
	TokenPI
	TokenE
	TokenPHI

	// Units
	TokenBytes
	TokenKilobytes
	TokenMegabytes
	TokenGigabytes
	TokenSeconds
	TokenMilliseconds
	TokenMicroseconds
	TokenPercent

	// Delimiters
	TokenDot
	TokenLBrace
	TokenRBrace
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenColon
	TokenSemicolon
	TokenDash
	TokenEquals

	// Data flow operators
	TokenArrowRight
	TokenArrowLeft
	TokenArrowBidirectional
)

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     position.Position
	Length  int // width of the token in source bytes
}

// End returns the position immediately after the token. Tokens never span
// lines except for bracketed comments and multi-line strings, for which the
// end column is approximate.
func (t Token) End() position.Position {
	return position.Position{Line: t.Pos.Line, Column: t.Pos.Column + t.Length}
}

// String returns a debug rendering of the token.
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Line: %d, Column: %d}",
		t.Type, t.Literal, t.Pos.Line, t.Pos.Column)
}

// tokenNames provides display names for token types.
var tokenNames = map[TokenType]string{
	TokenEOF:     "EOF",
	TokenError:   "ERROR",
	TokenNewline: "NEWLINE",

	TokenIdentifier: "IDENTIFIER",
	TokenNumber:     "NUMBER",
	TokenString:     "STRING",

	TokenComment:    "COMMENT",
	TokenDocComment: "DOC_COMMENT",
	TokenComComment: "COM_COMMENT",
	TokenTagComment: "TAG_COMMENT",

	TokenRunTask:        "RUNTASK",
	TokenPrintMessage:   "PRINTMESSAGE",
	TokenReturnValue:    "RETURNVALUE",
	TokenIfCondition:    "IFCONDITION",
	TokenThenBlock:      "THENBLOCK",
	TokenElseBlock:      "ELSEBLOCK",
	TokenChoosePath:     "CHOOSEPATH",
	TokenCaseOption:     "CASEOPTION",
	TokenDefaultOption:  "DEFAULTOPTION",
	TokenWhileLoop:      "WHILELOOP",
	TokenUntilCondition: "UNTILCONDITION",
	TokenForEvery:       "FOREVERY",
	TokenIn:             "IN",
	TokenTryBlock:       "TRYBLOCK",
	TokenCatchError:     "CATCHERROR",
	TokenFinallyBlock:   "FINALLYBLOCK",
	TokenSendMessage:    "SENDMESSAGE",
	TokenReceiveMessage: "RECEIVEMESSAGE",
	TokenEveryInterval:  "EVERYINTERVAL",
	TokenBreakLoop:      "BREAKLOOP",
	TokenHaltProgram:    "HALTPROGRAM",
	TokenContinueLoop:   "CONTINUELOOP",

	TokenFixedPool:       "FIXEDPOOL",
	TokenDynamicPool:     "DYNAMICPOOL",
	TokenTemporalPool:    "TEMPORALPOOL",
	TokenNeuralPool:      "NEURALPOOL",
	TokenKernelPool:      "KERNELPOOL",
	TokenActorPool:       "ACTORPOOL",
	TokenSecurityPool:    "SECURITYPOOL",
	TokenConstrainedPool: "CONSTRAINEDPOOL",
	TokenFilePool:        "FILEPOOL",

	TokenSubPool:       "SUBPOOL",
	TokenInitialize:    "INITIALIZE",
	TokenCanChange:     "CANCHANGE",
	TokenCanBeNull:     "CANBENULL",
	TokenRange:         "RANGE",
	TokenMaximumLength: "MAXIMUMLENGTH",
	TokenMinimumLength: "MINIMUMLENGTH",
	TokenElementType:   "ELEMENTTYPE",
	TokenWhere:         "WHERE",

	TokenAdd:           "ADD",
	TokenSubtract:      "SUBTRACT",
	TokenMultiply:      "MULTIPLY",
	TokenDivide:        "DIVIDE",
	TokenPower:         "POWER",
	TokenModulo:        "MODULO",
	TokenSquareRoot:    "SQUAREROOT",
	TokenAbsoluteValue: "ABSOLUTEVALUE",

	TokenGreaterThan:  "GREATERTHAN",
	TokenLessThan:     "LESSTHAN",
	TokenGreaterEqual: "GREATEREQUAL",
	TokenLessEqual:    "LESSEQUAL",
	TokenEqualTo:      "EQUALTO",
	TokenNotEqual:     "NOTEQUAL",

	TokenAnd:     "AND",
	TokenOr:      "OR",
	TokenNot:     "NOT",
	TokenXor:     "XOR",
	TokenImplies: "IMPLIES",

	TokenBitwiseAnd: "BITWISEAND",
	TokenBitwiseOr:  "BITWISEOR",
	TokenBitwiseXor: "BITWISEXOR",
	TokenBitwiseNot: "BITWISENOT",
	TokenLeftShift:  "LEFTSHIFT",
	TokenRightShift: "RIGHTSHIFT",

	TokenReadInput:       "READINPUT",
	TokenReadInputNumber: "READINPUTNUMBER",
	TokenGetUserChoice:   "GETUSERCHOICE",
	TokenReadKey:         "READKEY",

	TokenStringEquals:     "STRINGEQUALS",
	TokenStringContains:   "STRINGCONTAINS",
	TokenStringStartsWith: "STRINGSTARTSWITH",
	TokenStringEndsWith:   "STRINGENDSWITH",
	TokenStringCompare:    "STRINGCOMPARE",

	TokenStringConcat:    "STRINGCONCAT",
	TokenStringLength:    "STRINGLENGTH",
	TokenStringSubstring: "STRINGSUBSTRING",
	TokenStringToUpper:   "STRINGTOUPPER",
	TokenStringToLower:   "STRINGTOLOWER",
	TokenStringTrim:      "STRINGTRIM",
	TokenStringReplace:   "STRINGREPLACE",
	TokenStringToString:  "STRINGTOSTRING",
	TokenNumberToString:  "NUMBERTOSTRING",
	TokenStringToNumber:  "STRINGTONUMBER",

	TokenOpenFile:            "OPENFILE",
	TokenCloseFile:           "CLOSEFILE",
	TokenReadFile:            "READFILE",
	TokenWriteFile:           "WRITEFILE",
	TokenCreateFile:          "CREATEFILE",
	TokenDeleteFile:          "DELETEFILE",
	TokenReadLine:            "READLINE",
	TokenWriteLine:           "WRITELINE",
	TokenReadTextFile:        "READTEXTFILE",
	TokenWriteTextFile:       "WRITETEXTFILE",
	TokenAppendTextFile:      "APPENDTEXTFILE",
	TokenReadBinaryFile:      "READBINARYFILE",
	TokenWriteBinaryFile:     "WRITEBINARYFILE",
	TokenAppendBinaryFile:    "APPENDBINARYFILE",
	TokenFileExists:          "FILEEXISTS",
	TokenGetFileSize:         "GETFILESIZE",
	TokenGetFileDate:         "GETFILEDATE",
	TokenSetFileDate:         "SETFILEDATE",
	TokenGetFilePermissions:  "GETFILEPERMISSIONS",
	TokenSetFilePermissions:  "SETFILEPERMISSIONS",
	TokenSeekPosition:        "SEEKPOSITION",
	TokenGetPosition:         "GETPOSITION",
	TokenRewind:              "REWIND",
	TokenCopyFile:            "COPYFILE",
	TokenMoveFile:            "MOVEFILE",
	TokenRenameFile:          "RENAMEFILE",
	TokenFlushFile:           "FLUSHFILE",
	TokenLockFile:            "LOCKFILE",
	TokenUnlockFile:          "UNLOCKFILE",
	TokenCreateDirectory:     "CREATEDIRECTORY",
	TokenDeleteDirectory:     "DELETEDIRECTORY",
	TokenListDirectory:       "LISTDIRECTORY",
	TokenDirectoryExists:     "DIRECTORYEXISTS",
	TokenGetWorkingDirectory: "GETWORKINGDIRECTORY",
	TokenSetWorkingDirectory: "SETWORKINGDIRECTORY",
	TokenBufferedRead:        "BUFFEREDREAD",
	TokenBufferedWrite:       "BUFFEREDWRITE",
	TokenSetBufferSize:       "SETBUFFERSIZE",
	TokenFlushBuffers:        "FLUSHBUFFERS",

	TokenPointer:       "POINTER",
	TokenDereference:   "DEREFERENCE",
	TokenAddressOf:     "ADDRESSOF",
	TokenSizeOf:        "SIZEOF",
	TokenAllocate:      "ALLOCATE",
	TokenDeallocate:    "DEALLOCATE",
	TokenMemoryCopy:    "MEMORYCOPY",
	TokenMemorySet:     "MEMORYSET",
	TokenMemoryCompare: "MEMORYCOMPARE",

	TokenHardwareRegister:      "HARDWAREREGISTER",
	TokenControlRegister:       "CONTROLREGISTER",
	TokenSegmentRegister:       "SEGMENTREGISTER",
	TokenFlagsRegister:         "FLAGSREGISTER",
	TokenModelSpecificRegister: "MODELSPECIFICREGISTER",

	TokenPortRead:       "PORTREAD",
	TokenPortWrite:      "PORTWRITE",
	TokenPortReadByte:   "PORTREADBYTE",
	TokenPortWriteByte:  "PORTWRITEBYTE",
	TokenPortReadWord:   "PORTREADWORD",
	TokenPortWriteWord:  "PORTWRITEWORD",
	TokenPortReadDWord:  "PORTREADDWORD",
	TokenPortWriteDWord: "PORTWRITEDWORD",

	TokenInterruptHandler:         "INTERRUPTHANDLER",
	TokenExceptionHandler:         "EXCEPTIONHANDLER",
	TokenEnableInterrupts:         "ENABLEINTERRUPTS",
	TokenDisableInterrupts:        "DISABLEINTERRUPTS",
	TokenHalt:                     "HALT",
	TokenWait:                     "WAIT",
	TokenTriggerSoftwareInterrupt: "TRIGGERSOFTWAREINTERRUPT",
	TokenInterruptVector:          "INTERRUPTVECTOR",

	TokenAtomicRead:        "ATOMICREAD",
	TokenAtomicWrite:       "ATOMICWRITE",
	TokenAtomicAdd:         "ATOMICADD",
	TokenAtomicSubtract:    "ATOMICSUBTRACT",
	TokenAtomicCompareSwap: "ATOMICCOMPARESWAP",
	TokenAtomicExchange:    "ATOMICEXCHANGE",
	TokenCompilerFence:     "COMPILERFENCE",

	TokenCacheInvalidate: "CACHEINVALIDATE",
	TokenCacheFlush:      "CACHEFLUSH",
	TokenTLBInvalidate:   "TLBINVALIDATE",
	TokenTLBFlush:        "TLBFLUSH",
	TokenPhysicalMemory:  "PHYSICALMEMORY",

	TokenInlineAssembly: "INLINEASSEMBLY",
	TokenAssembly:       "ASSEMBLY",
	TokenVolatile:       "VOLATILE",
	TokenBarrier:        "BARRIER",

	TokenSystemCall:     "SYSTEMCALL",
	TokenPrivilegeLevel: "PRIVILEGELEVEL",
	TokenTaskSwitch:     "TASKSWITCH",
	TokenProcessContext: "PROCESSCONTEXT",

	TokenDeviceDriver:    "DEVICEDRIVER",
	TokenDeviceRegister:  "DEVICEREGISTER",
	TokenDMAOperation:    "DMAOPERATION",
	TokenMMIORead:        "MMIOREAD",
	TokenMMIOWrite:       "MMIOWRITE",
	TokenDeviceInterrupt: "DEVICEINTERRUPT",

	TokenBootloader:         "BOOTLOADER",
	TokenKernelEntry:        "KERNELENTRY",
	TokenInitialization:     "INITIALIZATION",
	TokenGlobalConstructors: "GLOBALCONSTRUCTORS",
	TokenGlobalDestructors:  "GLOBALDESTRUCTORS",

	TokenPageTable:     "PAGETABLE",
	TokenVirtualMemory: "VIRTUALMEMORY",
	TokenMMIO:          "MMIO",
	TokenCache:         "CACHE",
	TokenTLB:           "TLB",
	TokenMemoryBarrier: "MEMORYBARRIER",

	TokenReadOnly:         "READONLY",
	TokenReadWrite:        "READWRITE",
	TokenReadExecute:      "READEXECUTE",
	TokenReadWriteExecute: "READWRITEEXECUTE",
	TokenUserMode:         "USERMODE",
	TokenKernelMode:       "KERNELMODE",
	TokenGlobal:           "GLOBAL",
	TokenDirty:            "DIRTY",
	TokenAccessed:         "ACCESSED",

	TokenCached:         "CACHED",
	TokenUncached:       "UNCACHED",
	TokenWriteCombining: "WRITECOMBINING",
	TokenWriteThrough:   "WRITETHROUGH",
	TokenWriteBack:      "WRITEBACK",
	TokenL1Cache:        "L1CACHE",
	TokenL2Cache:        "L2CACHE",
	TokenL3Cache:        "L3CACHE",

	TokenPageSize4KB: "PAGESIZE4KB",
	TokenPageSize2MB: "PAGESIZE2MB",
	TokenPageSize1GB: "PAGESIZE1GB",

	TokenInvalidate:  "INVALIDATE",
	TokenFlush:       "FLUSH",
	TokenFlushAll:    "FLUSHALL",
	TokenFlushGlobal: "FLUSHGLOBAL",

	TokenFusedType: "FUSEDTYPE",

	TokenFunction:   "FUNCTION",
	TokenLambda:     "LAMBDA",
	TokenApply:      "APPLY",
	TokenCombinator: "COMBINATOR",
	TokenInput:      "INPUT",
	TokenOutput:     "OUTPUT",
	TokenBody:       "BODY",
	TokenCurry:      "CURRY",
	TokenUncurry:    "UNCURRY",
	TokenCompose:    "COMPOSE",

	TokenInteger:         "INTEGER",
	TokenFloatingPoint:   "FLOATINGPOINT",
	TokenText:            "TEXT",
	TokenBoolean:         "BOOLEAN",
	TokenAddress:         "ADDRESS",
	TokenArray:           "ARRAY",
	TokenMap:             "MAP",
	TokenTuple:           "TUPLE",
	TokenRecord:          "RECORD",
	TokenOptionalType:    "OPTIONALTYPE",
	TokenConstrainedType: "CONSTRAINEDTYPE",
	TokenAny:             "ANY",
	TokenVoid:            "VOID",

	TokenByte:   "BYTE",
	TokenWord:   "WORD",
	TokenDWord:  "DWORD",
	TokenQWord:  "QWORD",
	TokenUInt8:  "UINT8",
	TokenUInt16: "UINT16",
	TokenUInt32: "UINT32",
	TokenUInt64: "UINT64",
	TokenInt8:   "INT8",
	TokenInt16:  "INT16",
	TokenInt32:  "INT32",
	TokenInt64:  "INT64",

	TokenMacroBlock:  "MACROBLOCK",
	TokenMacro:       "MACRO",
	TokenRunMacro:    "RUNMACRO",
	TokenExpandMacro: "EXPANDMACRO",

	TokenSecurityContext:   "SECURITYCONTEXT",
	TokenWithSecurity:      "WITHSECURITY",
	TokenAllowedOperations: "ALLOWEDOPERATIONS",
	TokenDeniedOperations:  "DENIEDOPERATIONS",
	TokenMemoryLimit:       "MEMORYLIMIT",
	TokenCPUQuota:          "CPUQUOTA",
	TokenLevel:             "LEVEL",

	TokenHardware:        "HARDWARE",
	TokenSyscall:         "SYSCALL",
	TokenInterrupt:       "INTERRUPT",
	TokenRegister:        "REGISTER",
	TokenMemory:          "MEMORY",
	TokenPhysicalAddress: "PHYSICALADDRESS",
	TokenVirtualAddress:  "VIRTUALADDRESS",
	TokenFlags:           "FLAGS",

	TokenSubRoutine:    "SUBROUTINE",
	TokenLibraryImport: "LIBRARYIMPORT",
	TokenLoopMain:      "LOOPMAIN",
	TokenLoopActor:     "LOOPACTOR",
	TokenLoopStart:     "LOOPSTART",
	TokenLoopEnd:       "LOOPEND",
	TokenLoopShadow:    "LOOPSHADOW",

	TokenTrue:      "TRUE",
	TokenFalse:     "FALSE",
	TokenNull:      "NULL",
	TokenAutomatic: "AUTOMATIC",
	TokenUnlimited: "UNLIMITED",

	TokenConstant: "CONSTANT",
	TokenPI:       "PI",
	TokenE:        "E",
	TokenPHI:      "PHI",

	TokenBytes:        "BYTES",
	TokenKilobytes:    "KILOBYTES",
	TokenMegabytes:    "MEGABYTES",
	TokenGigabytes:    "GIGABYTES",
	TokenSeconds:      "SECONDS",
	TokenMilliseconds: "MILLISECONDS",
	TokenMicroseconds: "MICROSECONDS",
	TokenPercent:      "PERCENT",

	TokenDot:       "DOT",
	TokenLBrace:    "LBRACE",
	TokenRBrace:    "RBRACE",
	TokenLParen:    "LPAREN",
	TokenRParen:    "RPAREN",
	TokenLBracket:  "LBRACKET",
	TokenRBracket:  "RBRACKET",
	TokenComma:     "COMMA",
	TokenColon:     "COLON",
	TokenSemicolon: "SEMICOLON",
	TokenDash:      "DASH",
	TokenEquals:    "EQUALS",

	TokenArrowRight:         "ARROW_RIGHT",
	TokenArrowLeft:          "ARROW_LEFT",
	TokenArrowBidirectional: "ARROW_BIDIRECTIONAL",
}

// keywords maps reserved words to their token types. Lookup happens after
// the fused-type probe, so a keyword can never leak out as an identifier.
var keywords = map[string]TokenType{
	"RunTask":        TokenRunTask,
	"PrintMessage":   TokenPrintMessage,
	"ReturnValue":    TokenReturnValue,
	"IfCondition":    TokenIfCondition,
	"ThenBlock":      TokenThenBlock,
	"ElseBlock":      TokenElseBlock,
	"ChoosePath":     TokenChoosePath,
	"CaseOption":     TokenCaseOption,
	"DefaultOption":  TokenDefaultOption,
	"WhileLoop":      TokenWhileLoop,
	"UntilCondition": TokenUntilCondition,
	"ForEvery":       TokenForEvery,
	"in":             TokenIn,
	"TryBlock":       TokenTryBlock,
	"CatchError":     TokenCatchError,
	"FinallyBlock":   TokenFinallyBlock,
	"SendMessage":    TokenSendMessage,
	"ReceiveMessage": TokenReceiveMessage,
	"EveryInterval":  TokenEveryInterval,
	"BreakLoop":      TokenBreakLoop,
	"HaltProgram":    TokenHaltProgram,
	"ContinueLoop":   TokenContinueLoop,

	"FixedPool":       TokenFixedPool,
	"DynamicPool":     TokenDynamicPool,
	"TemporalPool":    TokenTemporalPool,
	"NeuralPool":      TokenNeuralPool,
	"KernelPool":      TokenKernelPool,
	"ActorPool":       TokenActorPool,
	"SecurityPool":    TokenSecurityPool,
	"ConstrainedPool": TokenConstrainedPool,
	"FilePool":        TokenFilePool,
	"SubPool":         TokenSubPool,
	"Initialize":      TokenInitialize,
	"CanChange":       TokenCanChange,
	"CanBeNull":       TokenCanBeNull,
	"Range":           TokenRange,
	"MaximumLength":   TokenMaximumLength,
	"MinimumLength":   TokenMinimumLength,
	"ElementType":     TokenElementType,
	"Where":           TokenWhere,

	"Add":           TokenAdd,
	"Subtract":      TokenSubtract,
	"Multiply":      TokenMultiply,
	"Divide":        TokenDivide,
	"Power":         TokenPower,
	"Modulo":        TokenModulo,
	"SquareRoot":    TokenSquareRoot,
	"AbsoluteValue": TokenAbsoluteValue,
	"GreaterThan":   TokenGreaterThan,
	"LessThan":      TokenLessThan,
	"GreaterEqual":  TokenGreaterEqual,
	"LessEqual":     TokenLessEqual,
	"EqualTo":       TokenEqualTo,
	"NotEqual":      TokenNotEqual,
	"And":           TokenAnd,
	"Or":            TokenOr,
	"Not":           TokenNot,
	"Xor":           TokenXor,
	"Implies":       TokenImplies,
	"BitwiseAnd":    TokenBitwiseAnd,
	"BitwiseOr":     TokenBitwiseOr,
	"BitwiseXor":    TokenBitwiseXor,
	"BitwiseNot":    TokenBitwiseNot,
	"LeftShift":     TokenLeftShift,
	"RightShift":    TokenRightShift,

	"Function":   TokenFunction,
	"Lambda":     TokenLambda,
	"Apply":      TokenApply,
	"Combinator": TokenCombinator,
	"Input":      TokenInput,
	"Output":     TokenOutput,
	"Body":       TokenBody,
	"Curry":      TokenCurry,
	"Uncurry":    TokenUncurry,
	"Compose":    TokenCompose,

	"Integer":         TokenInteger,
	"FloatingPoint":   TokenFloatingPoint,
	"Text":            TokenText,
	"Boolean":         TokenBoolean,
	"Address":         TokenAddress,
	"Array":           TokenArray,
	"Map":             TokenMap,
	"Tuple":           TokenTuple,
	"Record":          TokenRecord,
	"OptionalType":    TokenOptionalType,
	"ConstrainedType": TokenConstrainedType,
	"Any":             TokenAny,
	"Void":            TokenVoid,

	"MacroBlock":  TokenMacroBlock,
	"Macro":       TokenMacro,
	"RunMacro":    TokenRunMacro,
	"ExpandMacro": TokenExpandMacro,

	"SecurityContext":   TokenSecurityContext,
	"WithSecurity":      TokenWithSecurity,
	"AllowedOperations": TokenAllowedOperations,
	"DeniedOperations":  TokenDeniedOperations,
	"MemoryLimit":       TokenMemoryLimit,
	"CPUQuota":          TokenCPUQuota,
	"Level":             TokenLevel,

	"Hardware":        TokenHardware,
	"Syscall":         TokenSyscall,
	"Interrupt":       TokenInterrupt,
	"Register":        TokenRegister,
	"Memory":          TokenMemory,
	"PhysicalAddress": TokenPhysicalAddress,
	"VirtualAddress":  TokenVirtualAddress,
	"Flags":           TokenFlags,

	"SubRoutine":    TokenSubRoutine,
	"LibraryImport": TokenLibraryImport,
	"Library":       TokenLibraryImport,
	"LoopMain":      TokenLoopMain,
	"LoopActor":     TokenLoopActor,
	"LoopStart":     TokenLoopStart,
	"LoopEnd":       TokenLoopEnd,
	"LoopShadow":    TokenLoopShadow,

	"True":      TokenTrue,
	"False":     TokenFalse,
	"Null":      TokenNull,
	"Automatic": TokenAutomatic,
	"Unlimited": TokenUnlimited,

	"Constant": TokenConstant,
	"PI":       TokenPI,
	"E":        TokenE,
	"PHI":      TokenPHI,

	"Bytes":        TokenBytes,
	"Kilobytes":    TokenKilobytes,
	"Megabytes":    TokenMegabytes,
	"Gigabytes":    TokenGigabytes,
	"Seconds":      TokenSeconds,
	"Milliseconds": TokenMilliseconds,
	"Microseconds": TokenMicroseconds,
	"Percent":      TokenPercent,

	"ReadInput":        TokenReadInput,
	"ReadInputNumber":  TokenReadInputNumber,
	"GetUserChoice":    TokenGetUserChoice,
	"ReadKey":          TokenReadKey,
	"StringEquals":     TokenStringEquals,
	"StringContains":   TokenStringContains,
	"StringStartsWith": TokenStringStartsWith,
	"StringEndsWith":   TokenStringEndsWith,
	"StringCompare":    TokenStringCompare,
	"StringConcat":     TokenStringConcat,
	"StringLength":     TokenStringLength,
	"StringSubstring":  TokenStringSubstring,
	"StringToUpper":    TokenStringToUpper,
	"StringToLower":    TokenStringToLower,
	"StringTrim":       TokenStringTrim,
	"StringReplace":    TokenStringReplace,
	"StringToString":   TokenStringToString,
	"NumberToString":   TokenNumberToString,
	"StringToNumber":   TokenStringToNumber,

	"OpenFile":            TokenOpenFile,
	"CloseFile":           TokenCloseFile,
	"ReadFile":            TokenReadFile,
	"WriteFile":           TokenWriteFile,
	"CreateFile":          TokenCreateFile,
	"DeleteFile":          TokenDeleteFile,
	"ReadLine":            TokenReadLine,
	"WriteLine":           TokenWriteLine,
	"ReadTextFile":        TokenReadTextFile,
	"WriteTextFile":       TokenWriteTextFile,
	"AppendTextFile":      TokenAppendTextFile,
	"ReadBinaryFile":      TokenReadBinaryFile,
	"WriteBinaryFile":     TokenWriteBinaryFile,
	"AppendBinaryFile":    TokenAppendBinaryFile,
	"FileExists":          TokenFileExists,
	"GetFileSize":         TokenGetFileSize,
	"GetFileDate":         TokenGetFileDate,
	"SetFileDate":         TokenSetFileDate,
	"GetFilePermissions":  TokenGetFilePermissions,
	"SetFilePermissions":  TokenSetFilePermissions,
	"SeekPosition":        TokenSeekPosition,
	"GetPosition":         TokenGetPosition,
	"Rewind":              TokenRewind,
	"CopyFile":            TokenCopyFile,
	"MoveFile":            TokenMoveFile,
	"RenameFile":          TokenRenameFile,
	"FlushFile":           TokenFlushFile,
	"LockFile":            TokenLockFile,
	"UnlockFile":          TokenUnlockFile,
	"CreateDirectory":     TokenCreateDirectory,
	"DeleteDirectory":     TokenDeleteDirectory,
	"ListDirectory":       TokenListDirectory,
	"DirectoryExists":     TokenDirectoryExists,
	"GetWorkingDirectory": TokenGetWorkingDirectory,
	"SetWorkingDirectory": TokenSetWorkingDirectory,
	"BufferedRead":        TokenBufferedRead,
	"BufferedWrite":       TokenBufferedWrite,
	"SetBufferSize":       TokenSetBufferSize,
	"FlushBuffers":        TokenFlushBuffers,

	"Pointer":       TokenPointer,
	"Dereference":   TokenDereference,
	"AddressOf":     TokenAddressOf,
	"SizeOf":        TokenSizeOf,
	"Allocate":      TokenAllocate,
	"Deallocate":    TokenDeallocate,
	"MemoryCopy":    TokenMemoryCopy,
	"MemorySet":     TokenMemorySet,
	"MemoryCompare": TokenMemoryCompare,

	"HardwareRegister":      TokenHardwareRegister,
	"ControlRegister":       TokenControlRegister,
	"SegmentRegister":       TokenSegmentRegister,
	"FlagsRegister":         TokenFlagsRegister,
	"ModelSpecificRegister": TokenModelSpecificRegister,

	"PortRead":       TokenPortRead,
	"PortWrite":      TokenPortWrite,
	"PortReadByte":   TokenPortReadByte,
	"PortWriteByte":  TokenPortWriteByte,
	"PortReadWord":   TokenPortReadWord,
	"PortWriteWord":  TokenPortWriteWord,
	"PortReadDWord":  TokenPortReadDWord,
	"PortWriteDWord": TokenPortWriteDWord,

	"InterruptHandler":         TokenInterruptHandler,
	"ExceptionHandler":         TokenExceptionHandler,
	"EnableInterrupts":         TokenEnableInterrupts,
	"DisableInterrupts":        TokenDisableInterrupts,
	"Halt":                     TokenHalt,
	"Wait":                     TokenWait,
	"TriggerSoftwareInterrupt": TokenTriggerSoftwareInterrupt,
	"InterruptVector":          TokenInterruptVector,

	"AtomicRead":        TokenAtomicRead,
	"AtomicWrite":       TokenAtomicWrite,
	"AtomicAdd":         TokenAtomicAdd,
	"AtomicSubtract":    TokenAtomicSubtract,
	"AtomicCompareSwap": TokenAtomicCompareSwap,
	"AtomicExchange":    TokenAtomicExchange,
	"MemoryBarrier":     TokenMemoryBarrier,
	"CompilerFence":     TokenCompilerFence,

	"CacheInvalidate": TokenCacheInvalidate,
	"CacheFlush":      TokenCacheFlush,
	"TLBInvalidate":   TokenTLBInvalidate,
	"TLBFlush":        TokenTLBFlush,
	"PhysicalMemory":  TokenPhysicalMemory,

	"InlineAssembly": TokenInlineAssembly,
	"Assembly":       TokenAssembly,
	"Volatile":       TokenVolatile,
	"Barrier":        TokenBarrier,

	"SystemCall":     TokenSystemCall,
	"PrivilegeLevel": TokenPrivilegeLevel,
	"TaskSwitch":     TokenTaskSwitch,
	"ProcessContext": TokenProcessContext,

	"DeviceDriver":    TokenDeviceDriver,
	"DeviceRegister":  TokenDeviceRegister,
	"DMAOperation":    TokenDMAOperation,
	"MMIORead":        TokenMMIORead,
	"MMIOWrite":       TokenMMIOWrite,
	"DeviceInterrupt": TokenDeviceInterrupt,

	"Bootloader":         TokenBootloader,
	"KernelEntry":        TokenKernelEntry,
	"Initialization":     TokenInitialization,
	"GlobalConstructors": TokenGlobalConstructors,
	"GlobalDestructors":  TokenGlobalDestructors,

	"Byte":   TokenByte,
	"Word":   TokenWord,
	"DWord":  TokenDWord,
	"QWord":  TokenQWord,
	"UInt8":  TokenUInt8,
	"UInt16": TokenUInt16,
	"UInt32": TokenUInt32,
	"UInt64": TokenUInt64,
	"Int8":   TokenInt8,
	"Int16":  TokenInt16,
	"Int32":  TokenInt32,
	"Int64":  TokenInt64,

	"PageTable":     TokenPageTable,
	"VirtualMemory": TokenVirtualMemory,
	"MMIO":          TokenMMIO,
	"Cache":         TokenCache,
	"TLB":           TokenTLB,

	"ReadOnly":         TokenReadOnly,
	"ReadWrite":        TokenReadWrite,
	"ReadExecute":      TokenReadExecute,
	"ReadWriteExecute": TokenReadWriteExecute,
	"RO":               TokenReadOnly,
	"RW":               TokenReadWrite,
	"RX":               TokenReadExecute,
	"RWX":              TokenReadWriteExecute,
	"UserMode":         TokenUserMode,
	"KernelMode":       TokenKernelMode,
	"Global":           TokenGlobal,
	"Dirty":            TokenDirty,
	"Accessed":         TokenAccessed,

	"Cached":         TokenCached,
	"Uncached":       TokenUncached,
	"WriteCombining": TokenWriteCombining,
	"WriteThrough":   TokenWriteThrough,
	"WriteBack":      TokenWriteBack,
	"L1":             TokenL1Cache,
	"L2":             TokenL2Cache,
	"L3":             TokenL3Cache,

	"Invalidate":  TokenInvalidate,
	"Flush":       TokenFlush,
	"FlushAll":    TokenFlushAll,
	"FlushGlobal": TokenFlushGlobal,
}

// LookupKeyword resolves an identifier against the keyword table.
func LookupKeyword(name string) (TokenType, bool) {
	tt, ok := keywords[name]
	return tt, ok
}

// Keywords returns the reserved words of the language. The slice is a copy
// sorted lazily by the caller if ordering matters.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	return out
}
